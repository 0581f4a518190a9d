package capability

import "mixin-generator/internal/model"

// Markers names the markers the generators react to.
type Markers struct {
	Copyable        model.TypeID
	CopyableInclude model.TypeID
	CopyableExclude model.TypeID
	CopyConstructor model.TypeID
	CopyFactory     model.TypeID
	Data            model.TypeID
	DataExclude     model.TypeID
	// Contract marks interfaces recognized as capability contracts.
	Contract model.TypeID
}

// DefaultMarkers returns the markers of the swizzle package.
func DefaultMarkers() Markers {
	return Markers{
		Copyable:        model.ParseTypeID("swizzle.Copyable"),
		CopyableInclude: model.ParseTypeID("swizzle.Copyable.Include"),
		CopyableExclude: model.ParseTypeID("swizzle.Copyable.Exclude"),
		CopyConstructor: model.ParseTypeID("swizzle.CopyConstructor"),
		CopyFactory:     model.ParseTypeID("swizzle.CopyFactory"),
		Data:            model.ParseTypeID("swizzle.Data"),
		DataExclude:     model.ParseTypeID("swizzle.Data.Exclude"),
		Contract:        model.ParseTypeID("swizzle.SwizzleMixin"),
	}
}
