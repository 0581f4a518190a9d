package gen

// PropertyView is the template view of one property.
type PropertyView struct {
	Field      string // Raw member name
	Pascal     string
	Camel      string
	SimpleType string // Type rendered with simple names
	Writable   bool
}

// CopyMethodData is the data of the copy-method templates.
type CopyMethodData struct {
	QualifiedType string
	Property      PropertyView
	// Invocation re-creates the target; ChangedPlaceholder marks the new value.
	Invocation string
}

// AccessorsData is the data of the accessors template.
type AccessorsData struct {
	QualifiedType string
	Properties    []PropertyView
}
