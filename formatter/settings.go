package formatter

// MethodChainBreakingStyle controls how a method-call chain of length ≥ 2 lays out its links
// once the chain's own Group has broken (chains of length ≥ 2 always break).
type MethodChainBreakingStyle int

const (
	// SameLine keeps the first link adjacent to the base on the same line; every subsequent
	// link gets its own indented line.
	SameLine MethodChainBreakingStyle = iota
	// NextLine puts the base alone on its line; every link, including the first, gets its own
	// indented line.
	NextLine
)

// Settings is the formatter's configuration surface, analogous to the single maxColumn field
// teleivo/dot's printer carries, generalized to the knobs PHP chain/parameter formatting needs.
type Settings struct {
	// PrintWidth is the target column the layout engine tries to keep lines within.
	PrintWidth int
	// TabWidth is the number of columns a tab/indent level represents.
	TabWidth int
	// UseTabs renders indentation as literal tab characters instead of TabWidth spaces.
	UseTabs bool
	// TrailingComma appends a trailing comma (guarded by IfBreak) to broken parameter and
	// argument lists.
	TrailingComma bool
	// BreakPromotedPropertiesList forces a constructor's parameter list to break when any
	// parameter is a promoted property, and disables hugging for parameters carrying modifiers.
	BreakPromotedPropertiesList bool
	// MethodChainBreakingStyle selects how method-call chains of length ≥ 2 lay out their links.
	MethodChainBreakingStyle MethodChainBreakingStyle
}

// DefaultSettings returns the built-in configuration used when no config file or flag overrides
// a field, mirroring common Prettier-family conventions (120-column width, 4-space indent).
func DefaultSettings() Settings {
	return Settings{
		PrintWidth:                  120,
		TabWidth:                    4,
		UseTabs:                     false,
		TrailingComma:               true,
		BreakPromotedPropertiesList: true,
		MethodChainBreakingStyle:    SameLine,
	}
}
