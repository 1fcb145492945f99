package properties

// Bridges is feature 0x06.
const FeatureBridges = 0x06

func init() {
	register(NewFeatureTable(FeatureBridges, "bridges",
		Property(0x00, &IntDescriptor{FieldName: "fallback_type_id", Width: Width1, Base: Hex}),
		Property(0x08, &IntDescriptor{FieldName: "year_available", Width: Width1, Base: Hex}),
		Property(0x09, &IntDescriptor{FieldName: "minimum_length", Width: Width1, Base: Hex}),
		Property(0x0A, &IntDescriptor{FieldName: "maximum_length", Width: Width1, Base: Hex}),
		Property(0x0B, &IntDescriptor{FieldName: "cost_factor", Width: Width1, Base: Hex}),
		Property(0x0C, &IntDescriptor{FieldName: "maximum_speed", Width: Width2, Base: Hex}),
		Property(0x0D, &BridgeTableDescriptor{FieldName: "bridge_layout"}),
		Property(0x0E, &IntDescriptor{FieldName: "various_flags", Width: Width1, Base: Hex}),
		Property(0x0F, &DateDescriptor{FieldName: "long_year_available"}),
		Property(0x10, &IntDescriptor{FieldName: "purchase_text", Width: Width2, Base: Hex}),
		Property(0x11, &IntDescriptor{FieldName: "description_rail", Width: Width2, Base: Hex}),
		Property(0x12, &IntDescriptor{FieldName: "description_road", Width: Width2, Base: Hex}),
		Property(0x13, &IntDescriptor{FieldName: "cost_factor_word", Width: Width2, Base: Hex}),
	))
}
