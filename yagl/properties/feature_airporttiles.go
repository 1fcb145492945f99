package properties

// AirportTiles is feature 0x11.
const FeatureAirportTiles = 0x11

func init() {
	register(NewFeatureTable(FeatureAirportTiles, "airport_tiles",
		Property(0x08, &IntDescriptor{FieldName: "substitute_tile_id", Width: Width1, Base: Hex}),
		Property(0x09, &IntDescriptor{FieldName: "airport_tile_override", Width: Width1, Base: Hex}),
		Property(0x0E, &IntDescriptor{FieldName: "callback_flags", Width: Width1, Base: Hex}),
		SplitProperty(0x0F, &CompositeDescriptor{Parts: []Descriptor{
			&IntDescriptor{FieldName: "animation_frames", Width: Width1, Base: Hex},
			&IntDescriptor{FieldName: "animation_type", Width: Width1, Base: Hex},
		}}, "animation_frames", "animation_type"),
		Property(0x10, &IntDescriptor{FieldName: "animation_speed", Width: Width1, Base: Hex}),
		Property(0x11, &IntDescriptor{FieldName: "animation_triggers", Width: Width1, Base: Hex}),
	))
}
