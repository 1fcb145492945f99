package properties

// Aircraft is feature 0x03.
const FeatureAircraft = 0x03

func init() {
	register(NewFeatureTable(FeatureAircraft, "aircraft",
		Property(0x08, &IntDescriptor{FieldName: "sprite_id", Width: Width1, Base: Hex}),
		Property(0x09, &BoolDescriptor{FieldName: "is_helicopter", TrueByte: 0x00, FalseByte: 0x02}),
		Property(0x0A, &BoolDescriptor{FieldName: "is_large", TrueByte: 0x01, FalseByte: 0x00}),
		Property(0x0B, &IntDescriptor{FieldName: "cost_factor", Width: Width1, Base: Hex}),
		Property(0x0C, &IntDescriptor{FieldName: "speed_8_mph", Width: Width1, Base: Hex}),
		Property(0x0D, &IntDescriptor{FieldName: "acceleration", Width: Width1, Base: Hex}),
		Property(0x0E, &IntDescriptor{FieldName: "running_cost_factor", Width: Width1, Base: Hex}),
		Property(0x0F, &IntDescriptor{FieldName: "passenger_capacity", Width: Width2, Base: Hex}),
		// 0x10 has no property in this feature (reserved in the source).
		Property(0x11, &IntDescriptor{FieldName: "mail_capacity", Width: Width1, Base: Hex}),
		Property(0x12, &IntDescriptor{FieldName: "sound_effect_type", Width: Width1, Base: Hex}),
		Property(0x13, &IntDescriptor{FieldName: "refit_cargo_types", Width: Width4, Base: Hex}),
		Property(0x14, &IntDescriptor{FieldName: "callback_flags_mask", Width: Width1, Base: Hex}),
		Property(0x15, &IntDescriptor{FieldName: "refit_cost", Width: Width1, Base: Hex}),
		Property(0x16, &IntDescriptor{FieldName: "retire_vehicle_early", Width: Width1, Base: Hex}),
		Property(0x17, &IntDescriptor{FieldName: "miscellaneous_flags", Width: Width1, Base: Hex}),
		Property(0x18, &IntDescriptor{FieldName: "refittable_cargo_classes", Width: Width2, Base: Hex}),
		Property(0x19, &IntDescriptor{FieldName: "non_refittable_cargo_classes", Width: Width2, Base: Hex}),
		Property(0x1A, &DateDescriptor{FieldName: "long_introduction_date"}),
		Property(0x1B, &ExtByteDescriptor{FieldName: "sort_purchase_list", Base: Hex}),
		Property(0x1C, &IntDescriptor{FieldName: "custom_cargo_aging_period", Width: Width2, Base: Hex}),
		Property(0x1D, &CargoListDescriptor{FieldName: "always_refittable_cargos"}),
		Property(0x1E, &CargoListDescriptor{FieldName: "never_refittable_cargos"}),
		Property(0x1F, &IntDescriptor{FieldName: "aircraft_range", Width: Width2, Base: Hex}),
	))
}
