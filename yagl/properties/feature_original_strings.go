package properties

// FeatureOriginalStrings has no counterpart in the real feature-type
// byte space (0x00-0x13); it is a placeholder discriminant for the
// original-strings table, every operation of which is Unsupported
// per §9.
const FeatureOriginalStrings = 0xFF

func init() {
	register(NewFeatureTable(FeatureOriginalStrings, "original_strings",
		Property(0x00, &UnsupportedDescriptor{FieldName: "original_strings", Feature: "original_strings"}),
	))
}
