package properties

// Feature ids follow the NewGRF action00 feature-type byte; Houses is
// 0x07.
const FeatureHouses = 0x07

func init() {
	register(NewFeatureTable(FeatureHouses, "houses",
		Property(0x08, &IntDescriptor{FieldName: "substitute_building_id", Width: Width1, Base: Hex}),
		Property(0x09, &IntDescriptor{FieldName: "building_flags", Width: Width1, Base: Hex}),
		SplitProperty(0x0A, &CompositeDescriptor{Parts: []Descriptor{
			&IntDescriptor{FieldName: "first_year_available", Width: Width1, Base: Hex},
			&IntDescriptor{FieldName: "last_year_available", Width: Width1, Base: Hex},
		}}, "first_year_available", "last_year_available"),
		Property(0x0B, &IntDescriptor{FieldName: "population", Width: Width1, Base: Hex}),
		Property(0x0C, &IntDescriptor{FieldName: "mail_multiplier", Width: Width1, Base: Hex}),
		Property(0x0D, &IntDescriptor{FieldName: "passenger_acceptance", Width: Width1, Base: Hex}),
		Property(0x0E, &IntDescriptor{FieldName: "mail_acceptance", Width: Width1, Base: Hex}),
		SplitProperty(0x0F, &SplitSignByteDescriptor{
			BoolField: "accepts_goods",
			IntField:  "goods_etc_acceptance",
		}, "accepts_goods", "goods_etc_acceptance"),
		Property(0x10, &IntDescriptor{FieldName: "la_rating_decrease", Width: Width2, Base: Hex}),
		Property(0x11, &IntDescriptor{FieldName: "removal_cost_multiplier", Width: Width1, Base: Hex}),
		Property(0x12, &IntDescriptor{FieldName: "building_name_id", Width: Width2, Base: Hex}),
		Property(0x13, &IntDescriptor{FieldName: "availability_mask", Width: Width2, Base: Hex}),
		Property(0x14, &IntDescriptor{FieldName: "callback_flags", Width: Width1, Base: Hex}),
		Property(0x15, &IntDescriptor{FieldName: "override_byte", Width: Width1, Base: Hex}),
		Property(0x16, &IntDescriptor{FieldName: "refresh_multiplier", Width: Width1, Base: Hex}),
		Property(0x17, &ArrayDescriptor{FieldName: "four_random_colours", Count: 4, Width: Width1, Base: Hex}),
		Property(0x18, &IntDescriptor{FieldName: "appearance_probability", Width: Width1, Base: Hex}),
		Property(0x19, &IntDescriptor{FieldName: "extra_flags", Width: Width1, Base: Hex}),
		SplitProperty(0x1A, &HighBitFlagDescriptor{
			IntField:  "animation_frames",
			BoolField: "animation_loops",
		}, "animation_frames", "animation_loops"),
		Property(0x1B, &IntDescriptor{FieldName: "animation_speed", Width: Width1, Base: Hex}),
		Property(0x1C, &IntDescriptor{FieldName: "building_class", Width: Width1, Base: Hex}),
		Property(0x1D, &IntDescriptor{FieldName: "callback_flags_2", Width: Width1, Base: Hex}),
		Property(0x1E, &ArrayDescriptor{FieldName: "accepted_cargo_types", Count: 4, Width: Width1, Base: Hex}),
		Property(0x1F, &IntDescriptor{FieldName: "minimum_life_years", Width: Width2, Base: Hex}),
		Property(0x20, &CargoListDescriptor{FieldName: "accepted_cargo_list"}),
		Property(0x21, &IntDescriptor{FieldName: "long_minimum_year", Width: Width2, Base: Hex}),
		Property(0x22, &IntDescriptor{FieldName: "long_maximum_year", Width: Width2, Base: Hex}),
	))
}
