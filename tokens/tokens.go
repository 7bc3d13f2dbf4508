// Package tokens defines the typed style vocabulary shared by all
// components: variants, colors, sizes, rounding and border weights, plus
// the class bundles each (variant, color) pair resolves to.
package tokens

import "strings"

// Variant selects the structural treatment of a component surface.
type Variant string

const (
	VariantDefault     Variant = "default"
	VariantOutline     Variant = "outline"
	VariantTransparent Variant = "transparent"
	VariantSubtle      Variant = "subtle"
	VariantShadow      Variant = "shadow"
	VariantBordered    Variant = "bordered"
)

// Color selects the semantic color family of a component surface.
type Color string

const (
	ColorNatural   Color = "natural"
	ColorPrimary   Color = "primary"
	ColorSecondary Color = "secondary"
	ColorSuccess   Color = "success"
	ColorWarning   Color = "warning"
	ColorDanger    Color = "danger"
	ColorInfo      Color = "info"
	ColorMisc      Color = "misc"
	ColorDawn      Color = "dawn"
	ColorSilver    Color = "silver"
)

// Size selects the spatial scale of a component.
type Size string

const (
	SizeXS Size = "xs"
	SizeSM Size = "sm"
	SizeMD Size = "md"
	SizeLG Size = "lg"
	SizeXL Size = "xl"
)

// Rounded selects the corner radius of a component.
type Rounded string

const (
	RoundedNone Rounded = "none"
	RoundedXS   Rounded = "xs"
	RoundedSM   Rounded = "sm"
	RoundedMD   Rounded = "md"
	RoundedLG   Rounded = "lg"
	RoundedXL   Rounded = "xl"
	RoundedFull Rounded = "full"
)

// Border selects the border weight of a component.
type Border string

const (
	BorderNone Border = "none"
	BorderXS   Border = "xs"
	BorderSM   Border = "sm"
	BorderMD   Border = "md"
	BorderLG   Border = "lg"
	BorderXL   Border = "xl"
)

var (
	variants = map[string]Variant{
		string(VariantDefault):     VariantDefault,
		string(VariantOutline):     VariantOutline,
		string(VariantTransparent): VariantTransparent,
		string(VariantSubtle):      VariantSubtle,
		string(VariantShadow):      VariantShadow,
		string(VariantBordered):    VariantBordered,
	}
	colors = map[string]Color{
		string(ColorNatural):   ColorNatural,
		string(ColorPrimary):   ColorPrimary,
		string(ColorSecondary): ColorSecondary,
		string(ColorSuccess):   ColorSuccess,
		string(ColorWarning):   ColorWarning,
		string(ColorDanger):    ColorDanger,
		string(ColorInfo):      ColorInfo,
		string(ColorMisc):      ColorMisc,
		string(ColorDawn):      ColorDawn,
		string(ColorSilver):    ColorSilver,
	}
	sizes = map[string]Size{
		string(SizeXS): SizeXS,
		string(SizeSM): SizeSM,
		string(SizeMD): SizeMD,
		string(SizeLG): SizeLG,
		string(SizeXL): SizeXL,
	}
	roundeds = map[string]Rounded{
		string(RoundedNone): RoundedNone,
		string(RoundedXS):   RoundedXS,
		string(RoundedSM):   RoundedSM,
		string(RoundedMD):   RoundedMD,
		string(RoundedLG):   RoundedLG,
		string(RoundedXL):   RoundedXL,
		string(RoundedFull): RoundedFull,
	}
	borders = map[string]Border{
		string(BorderNone): BorderNone,
		string(BorderXS):   BorderXS,
		string(BorderSM):   BorderSM,
		string(BorderMD):   BorderMD,
		string(BorderLG):   BorderLG,
		string(BorderXL):   BorderXL,
	}
)

// ParseVariant maps a raw string onto a Variant. Unknown input returns the
// default variant and false.
func ParseVariant(s string) (Variant, bool) {
	v, ok := variants[strings.ToLower(strings.TrimSpace(s))]
	if !ok {
		return VariantDefault, false
	}
	return v, true
}

// ParseColor maps a raw string onto a Color. Unknown input returns the
// natural color and false.
func ParseColor(s string) (Color, bool) {
	c, ok := colors[strings.ToLower(strings.TrimSpace(s))]
	if !ok {
		return ColorNatural, false
	}
	return c, true
}

// ParseSize maps a raw string onto a Size. Unknown input returns the medium
// size and false.
func ParseSize(s string) (Size, bool) {
	v, ok := sizes[strings.ToLower(strings.TrimSpace(s))]
	if !ok {
		return SizeMD, false
	}
	return v, true
}

// ParseRounded maps a raw string onto a Rounded value. Unknown input
// returns no rounding and false.
func ParseRounded(s string) (Rounded, bool) {
	v, ok := roundeds[strings.ToLower(strings.TrimSpace(s))]
	if !ok {
		return RoundedNone, false
	}
	return v, true
}

// ParseBorder maps a raw string onto a Border weight. Unknown input returns
// no border and false.
func ParseBorder(s string) (Border, bool) {
	v, ok := borders[strings.ToLower(strings.TrimSpace(s))]
	if !ok {
		return BorderNone, false
	}
	return v, true
}

// Variants lists every recognised variant in declaration order.
func Variants() []Variant {
	return []Variant{
		VariantDefault, VariantOutline, VariantTransparent,
		VariantSubtle, VariantShadow, VariantBordered,
	}
}

// Colors lists every recognised color in declaration order.
func Colors() []Color {
	return []Color{
		ColorNatural, ColorPrimary, ColorSecondary, ColorSuccess,
		ColorWarning, ColorDanger, ColorInfo, ColorMisc, ColorDawn, ColorSilver,
	}
}

// JoinClasses joins class fragments with single spaces, dropping empties.
func JoinClasses(fragments ...string) string {
	parts := make([]string, 0, len(fragments))
	for _, fragment := range fragments {
		fragment = strings.TrimSpace(fragment)
		if fragment != "" {
			parts = append(parts, fragment)
		}
	}
	return strings.Join(parts, " ")
}

// RoundedClass returns the radius utility class for a Rounded value.
func RoundedClass(r Rounded) string {
	switch r {
	case RoundedXS:
		return "rounded-sm"
	case RoundedSM:
		return "rounded"
	case RoundedMD:
		return "rounded-md"
	case RoundedLG:
		return "rounded-lg"
	case RoundedXL:
		return "rounded-xl"
	case RoundedFull:
		return "rounded-full"
	default:
		return ""
	}
}

// BorderClass returns the border-width utility class for a Border value.
func BorderClass(b Border) string {
	switch b {
	case BorderXS:
		return "border"
	case BorderSM:
		return "border-2"
	case BorderMD:
		return "border-[3px]"
	case BorderLG:
		return "border-4"
	case BorderXL:
		return "border-[5px]"
	default:
		return "border-0"
	}
}
