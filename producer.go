package tcl

// Constructors for encodable values. None of them can fail; the encoder is
// total over every Value they produce.

func Text(s string) *Value {
	return &Value{
		Kind: KindText,
		Text: s,
	}
}

func Int(i int64) *Value {
	return &Value{
		Kind: KindInt,
		Int:  i,
	}
}

func Float(f float64) *Value {
	return &Value{
		Kind:  KindFloat,
		Float: f,
	}
}

func Bool(b bool) *Value {
	return &Value{
		Kind: KindBool,
		Flag: b,
	}
}

func List(children ...*Value) *Value {
	if children == nil {
		children = make([]*Value, 0, 0)
	}
	return &Value{
		Kind: KindList,
		List: children,
	}
}
