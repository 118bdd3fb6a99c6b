package token

// LexState mirrors the lexer's state bitset (spec component "Lex state").
// Kept here, next to the keyword table, because each keyword's effect on
// lex state is a property of the keyword itself.
type LexState uint16

const (
	StateBEG LexState = 1 << iota
	StateEND
	StateENDARG
	StateENDFN
	StateARG
	StateCMDARG
	StateMID
	StateFNAME
	StateDOT
	StateCLASS
	StateLABEL
	StateLABELED
	StateFITEM
)

func (s LexState) Has(bit LexState) bool { return s&bit != 0 }

// KeywordInfo is the table entry the spec's §4.1 "perfect-hash over
// length-2 through length-12 ASCII strings" keyword lookup returns: the
// keyword's own token kind, the lex state entered after consuming it, and
// (for keywords that are ambiguous between a statement-introducer and a
// modifier, e.g. "if"/"unless"/"while"/"until"/"rescue") the alternate
// modifier-form Kind to use when the lexer's current lex state says a
// modifier reading applies.
type KeywordInfo struct {
	Kind         Kind
	EntersState  LexState
	ModifierKind Kind // zero if the keyword never has a modifier form
}

// keywords is a plain map in this implementation rather than a generated
// perfect hash (the teacher's own lexIdentifierOrKeyword uses a Go switch
// over the matched string, which the compiler itself turns into a
// length-bucketed jump table — a map lookup here is the same idea without
// hand-rolling the bucketing; see DESIGN.md).
var keywords = map[string]KeywordInfo{
	"__LINE__":     {Kind: K__LINE__, EntersState: StateEND},
	"__FILE__":     {Kind: K__FILE__, EntersState: StateEND},
	"__ENCODING__": {Kind: K__ENCODING__, EntersState: StateEND},
	"BEGIN":        {Kind: KBEGIN_UPPER, EntersState: StateBEG},
	"END":          {Kind: KEND_UPPER, EntersState: StateBEG},
	"alias":        {Kind: KALIAS, EntersState: StateFNAME},
	"and":          {Kind: KAND, EntersState: StateBEG},
	"begin":        {Kind: KBEGIN, EntersState: StateBEG},
	"break":        {Kind: KBREAK, EntersState: StateBEG},
	"case":         {Kind: KCASE, EntersState: StateBEG},
	"class":        {Kind: KCLASS, EntersState: StateCLASS},
	"def":          {Kind: KDEF, EntersState: StateFNAME},
	"defined?":     {Kind: KDEFINED, EntersState: StateARG},
	"do":           {Kind: KDO, EntersState: StateBEG},
	"else":         {Kind: KELSE, EntersState: StateBEG},
	"elsif":        {Kind: KELSIF, EntersState: StateBEG},
	"end":          {Kind: KEND, EntersState: StateEND},
	"ensure":       {Kind: KENSURE, EntersState: StateBEG},
	"false":        {Kind: KFALSE, EntersState: StateEND},
	"for":          {Kind: KFOR, EntersState: StateBEG},
	"if":           {Kind: KIF, EntersState: StateBEG, ModifierKind: KIF_MOD},
	"in":           {Kind: KIN, EntersState: StateBEG},
	"module":       {Kind: KMODULE, EntersState: StateBEG},
	"next":         {Kind: KNEXT, EntersState: StateBEG},
	"nil":          {Kind: KNIL, EntersState: StateEND},
	"not":          {Kind: KNOT, EntersState: StateARG},
	"or":           {Kind: KOR, EntersState: StateBEG},
	"redo":         {Kind: KREDO, EntersState: StateEND},
	"rescue":       {Kind: KRESCUE, EntersState: StateMID, ModifierKind: KRESCUE_MOD},
	"retry":        {Kind: KRETRY, EntersState: StateEND},
	"return":       {Kind: KRETURN, EntersState: StateMID},
	"self":         {Kind: KSELF, EntersState: StateEND},
	"super":        {Kind: KSUPER, EntersState: StateARG},
	"then":         {Kind: KTHEN, EntersState: StateBEG},
	"true":         {Kind: KTRUE, EntersState: StateEND},
	"undef":        {Kind: KUNDEF, EntersState: StateFNAME},
	"unless":       {Kind: KUNLESS, EntersState: StateBEG, ModifierKind: KUNLESS_MOD},
	"until":        {Kind: KUNTIL, EntersState: StateBEG, ModifierKind: KUNTIL_MOD},
	"when":         {Kind: KWHEN, EntersState: StateBEG},
	"while":        {Kind: KWHILE, EntersState: StateBEG, ModifierKind: KWHILE_MOD},
	"yield":        {Kind: KYIELD, EntersState: StateARG},
}

// LookupKeyword reports whether ident is a Ruby reserved word and, if so,
// its table entry.
func LookupKeyword(ident string) (KeywordInfo, bool) {
	if len(ident) < 2 || len(ident) > 12 {
		return KeywordInfo{}, false
	}
	info, ok := keywords[ident]
	return info, ok
}

// KnownMagicCommentKeys lists the magic-comment keys the lexer understands,
// used as the fuzzy-match vocabulary for "did you mean" suggestions on a
// misspelled key (spec.md §4.1; diag.Suggest in internal/diag).
var KnownMagicCommentKeys = []string{"coding", "encoding", "frozen_string_literal", "warn_indent", "shareable_constant_value"}
