package tokens

// scheme holds the raw utility fragments one color family contributes to
// the variant bundles.
type scheme struct {
	solidBg    string
	solidText  string
	solidHover string
	softBg     string
	softText   string
	softHover  string
	border     string
}

var schemes = map[Color]scheme{
	ColorNatural: {
		solidBg:    "bg-zinc-700",
		solidText:  "text-white",
		solidHover: "hover:bg-zinc-800",
		softBg:     "bg-zinc-100",
		softText:   "text-zinc-700",
		softHover:  "hover:bg-zinc-200",
		border:     "border-zinc-500",
	},
	ColorPrimary: {
		solidBg:    "bg-blue-600",
		solidText:  "text-white",
		solidHover: "hover:bg-blue-700",
		softBg:     "bg-blue-50",
		softText:   "text-blue-700",
		softHover:  "hover:bg-blue-100",
		border:     "border-blue-500",
	},
	ColorSecondary: {
		solidBg:    "bg-purple-600",
		solidText:  "text-white",
		solidHover: "hover:bg-purple-700",
		softBg:     "bg-purple-50",
		softText:   "text-purple-700",
		softHover:  "hover:bg-purple-100",
		border:     "border-purple-500",
	},
	ColorSuccess: {
		solidBg:    "bg-emerald-600",
		solidText:  "text-white",
		solidHover: "hover:bg-emerald-700",
		softBg:     "bg-emerald-50",
		softText:   "text-emerald-700",
		softHover:  "hover:bg-emerald-100",
		border:     "border-emerald-500",
	},
	ColorWarning: {
		solidBg:    "bg-amber-500",
		solidText:  "text-amber-950",
		solidHover: "hover:bg-amber-600",
		softBg:     "bg-amber-50",
		softText:   "text-amber-700",
		softHover:  "hover:bg-amber-100",
		border:     "border-amber-500",
	},
	ColorDanger: {
		solidBg:    "bg-rose-600",
		solidText:  "text-white",
		solidHover: "hover:bg-rose-700",
		softBg:     "bg-rose-50",
		softText:   "text-rose-700",
		softHover:  "hover:bg-rose-100",
		border:     "border-rose-500",
	},
	ColorInfo: {
		solidBg:    "bg-cyan-600",
		solidText:  "text-white",
		solidHover: "hover:bg-cyan-700",
		softBg:     "bg-cyan-50",
		softText:   "text-cyan-700",
		softHover:  "hover:bg-cyan-100",
		border:     "border-cyan-500",
	},
	ColorMisc: {
		solidBg:    "bg-fuchsia-600",
		solidText:  "text-white",
		solidHover: "hover:bg-fuchsia-700",
		softBg:     "bg-fuchsia-50",
		softText:   "text-fuchsia-700",
		softHover:  "hover:bg-fuchsia-100",
		border:     "border-fuchsia-500",
	},
	ColorDawn: {
		solidBg:    "bg-stone-500",
		solidText:  "text-white",
		solidHover: "hover:bg-stone-600",
		softBg:     "bg-stone-100",
		softText:   "text-stone-700",
		softHover:  "hover:bg-stone-200",
		border:     "border-stone-400",
	},
	ColorSilver: {
		solidBg:    "bg-slate-400",
		solidText:  "text-slate-950",
		solidHover: "hover:bg-slate-500",
		softBg:     "bg-slate-100",
		softText:   "text-slate-600",
		softHover:  "hover:bg-slate-200",
		border:     "border-slate-400",
	},
}

type styleKey struct {
	variant Variant
	color   Color
}

// styleTable resolves every known (variant, color) pair to its class
// bundle. Populated once at package init so component render paths are a
// single map lookup.
var styleTable = buildStyleTable()

// fallbackBundle is returned for combinations outside the table. Unknown
// pairs degrade to a neutral surface instead of failing at render time.
const fallbackBundle = "bg-zinc-100 text-zinc-700 hover:bg-zinc-200"

func buildStyleTable() map[styleKey]string {
	table := make(map[styleKey]string, len(schemes)*len(Variants()))
	for color, sc := range schemes {
		table[styleKey{VariantDefault, color}] = JoinClasses(sc.solidBg, sc.solidText, sc.solidHover)
		table[styleKey{VariantOutline, color}] = JoinClasses("border", sc.border, sc.softText, sc.softHover)
		table[styleKey{VariantTransparent, color}] = JoinClasses("bg-transparent", sc.softText)
		table[styleKey{VariantSubtle, color}] = JoinClasses(sc.softText, sc.softHover)
		table[styleKey{VariantShadow, color}] = JoinClasses(sc.solidBg, sc.solidText, sc.solidHover, "shadow-md shadow-zinc-900/20")
		table[styleKey{VariantBordered, color}] = JoinClasses(sc.softBg, sc.softText, "border", sc.border)
	}
	return table
}

// StyleFor returns the class bundle for a (variant, color) pair. The
// second return reports whether the pair was found; callers get the
// fallback bundle either way.
func StyleFor(variant Variant, color Color) (string, bool) {
	bundle, ok := styleTable[styleKey{variant, color}]
	if !ok {
		return fallbackBundle, false
	}
	return bundle, true
}
