// tcl-style list encoder (encode only)
//
// this encoder produces the space-separated list/quoting format used by the
// Tcl family of embedded scripting languages. the output, scanned back by a
// conforming list splitter, yields exactly the original flat sequence of
// element strings.
//
// each element is emitted in the cheapest form that still round-trips:
//   1. bare    - the string itself, when it contains no space, '"', '\',
//                '{', '}', or control character
//   2. braced  - "{" .. s .. "}" with byte-for-byte verbatim content, when
//                the string needs protection, its braces are balanced, and
//                it does not end in an unpaired backslash
//   3. escaped - per-character backslash escapes, the fallback when brace
//                quoting cannot represent the content
//
// the empty string is always emitted as "{}" so that it survives as a field.
//
// examples:
//
//   simple_value
//   {a b c}
//   {say "hi"}
//   a\ bc\\
//   \{\{\{\}\}
//   {} {1 2 three {1 0}}
//
// BNF of the emitted form:
//
//  <list>         :: "" | <element> ( " " <element> )* ;
//  <element>      :: <bare> | <braced> | <escaped> ;
//
//  <bare>         :: <plain>+ ;
//  <plain>        :: <any code point except " ", "\"", "\\", "{", "}",
//                     and control characters (< 32 or 127)> ;
//
//  <braced>       :: "{" <brace-content>* "}" ;
//  <brace-content>:: <braced> | "\\" <any> | <any except "{" and "}"> ;
//
//  <escaped>      :: <escaped-char>+ ;
//  <escaped-char> :: <named> | <protected> | <hex> | <plain> ;
//  <named>        :: "\b" | "\f" | "\n" | "\r" | "\t" | "\v" ;
//  <protected>    :: "\" ( " " | "\"" | "\\" | "{" | "}" ) ;
//  <hex>          :: "\x" <hex-digit> <hex-digit> ;
//  <hex-digit>    :: "0" | ... | "9" | "a" | ... | "f" ;
//
// restrictions and caveats:
//   1. 8-bit clean output for forms 1 and 2, and for the pass-through arm of
//      form 3: only 7-bit ASCII characters have special meaning, all other
//      bytes are carried verbatim, including bytes that do not form valid
//      UTF-8.
//   2. scanning is per code point, not per UTF-16 code unit; characters
//      above the Basic Multilingual Plane are never split or escaped.
//   3. numeric elements use Go's default shortest formatting (strconv with
//      the 'g' verb for floats). other hosts format edge-case numbers such
//      as 1e21 or negative zero differently; treat the numeric text form as
//      a compatibility boundary between implementations, not as part of the
//      list format itself.
//   4. a nested list is encoded recursively and the result is always quoted,
//      even when its content alone would not require it, so that the nested
//      list stays a single element of its parent.

package tcl
