package node

// Built-in kinds.
var (
	NodeKind = Register(Info{Name: "Node"})
	Text     = Register(Info{Name: "Text", Parent: NodeKind, Flags: IsLeaf | IsInline})
	Element  = Register(Info{Name: "Element", Parent: NodeKind, Tag: "div"})

	Block         = Register(Info{Name: "Block", Parent: Element})
	LeafBlock     = Register(Info{Name: "LeafBlock", Parent: Block})
	ThematicBreak = Register(Info{Name: "ThematicBreak", Parent: LeafBlock, Tag: "hr", Flags: IsVoid})
	Heading       = Register(Info{Name: "Heading", Parent: LeafBlock, Tag: "h", Flags: IsHeading})
	TitleHeading  = Register(Info{Name: "TitleHeading", Parent: Heading, Class: "title-heading"})
	PreBlock      = Register(Info{Name: "PreBlock", Parent: LeafBlock, Tag: "pre", Class: "lexical grammar"})
	CodeBlock     = Register(Info{Name: "CodeBlock", Parent: LeafBlock, Tag: "pre"})
	Paragraph     = Register(Info{Name: "Paragraph", Parent: LeafBlock, Tag: "p"})

	ContainerBlock  = Register(Info{Name: "ContainerBlock", Parent: Block})
	List            = Register(Info{Name: "List", Parent: ContainerBlock, Tag: "ul"})
	OrderedList     = Register(Info{Name: "OrderedList", Parent: List, Tag: "ol"})
	UnorderedList   = Register(Info{Name: "UnorderedList", Parent: List})
	ListItem        = Register(Info{Name: "ListItem", Parent: ContainerBlock, Tag: "li"})
	BlockQuote      = Register(Info{Name: "BlockQuote", Parent: ContainerBlock, Tag: "blockquote"})
	Navigation      = Register(Info{Name: "Nav", Parent: ContainerBlock, Tag: "nav"})
	TableOfContents = Register(Info{Name: "TableOfContents", Parent: ContainerBlock, Class: "toc"})
	Sequence        = Register(Info{Name: "Sequence", Parent: ContainerBlock, Flags: IsTransparent})
	Section         = Register(Info{Name: "Section", Parent: Sequence})
	Document        = Register(Info{Name: "Document", Parent: Sequence})
	AlternativeList = Register(Info{Name: "AlternativeList", Parent: Sequence, Separator: "\n"})

	Callout          = Register(Info{Name: "Callout", Parent: ContainerBlock, Class: "callout", Flags: IsCallout})
	NoteCallout      = Register(Info{Name: "NoteCallout", Parent: Callout, Class: "note", Title: "Note"})
	IssueCallout     = Register(Info{Name: "IssueCallout", Parent: Callout, Class: "issue", Title: "Issue"})
	ToDoCallout      = Register(Info{Name: "ToDoCallout", Parent: Callout, Class: "issue", Title: "TODO"})
	GrammarCallout   = Register(Info{Name: "GrammarCallout", Parent: Callout, Class: "grammar", Title: "Grammar", Flags: IsGrammarCallout})
	LexicalCallout   = Register(Info{Name: "LexicalCallout", Parent: GrammarCallout, Class: "lexical", Title: "Lexical"})
	SyntaxCallout    = Register(Info{Name: "SyntaxCallout", Parent: GrammarCallout, Class: "syntax", Title: "Syntax"})
	SemanticsCallout = Register(Info{Name: "SemanticsCallout", Parent: GrammarCallout, Class: "semantics", Title: "Semantics"})

	Production = Register(Info{Name: "Production", Parent: Block, Class: "grammar production", Separator: "\n"})

	Inline         = Register(Info{Name: "Inline", Parent: Element, Tag: "span", Flags: IsInline})
	CodeSpan       = Register(Info{Name: "CodeSpan", Parent: Inline, Tag: "code", Flags: IsSpecialSpan})
	Link           = Register(Info{Name: "Link", Parent: Inline, Tag: "a"})
	Strong         = Register(Info{Name: "Strong", Parent: Inline, Tag: "strong"})
	Emphasis       = Register(Info{Name: "Emphasis", Parent: Inline, Tag: "em"})
	LineBreak      = Register(Info{Name: "LineBreak", Parent: Inline, Tag: "br", Flags: IsVoid})
	EscapeSequence = Register(Info{Name: "EscapeSequence", Parent: Inline, Flags: IsTransparent})
	Definition     = Register(Info{Name: "Definition", Parent: Inline, Tag: "dfn"})
	Reference      = Register(Info{Name: "Reference", Parent: Inline, Tag: "a"})
	Variable       = Register(Info{Name: "Variable", Parent: Inline, Tag: "var"})
	MetaVariable   = Register(Info{Name: "MetaVariable", Parent: Variable, Class: "meta", Flags: IsSpecialSpan})
	Meta           = Register(Info{Name: "Meta", Parent: Inline, Class: "meta"})
	MetaValue      = Register(Info{Name: "MetaValue", Parent: Meta})
	MetaTypeNode   = Register(Info{Name: "MetaTypeNode", Parent: MetaValue})

	GrammarNode             = Register(Info{Name: "GrammarNode", Parent: Inline, Class: "grammar"})
	Or                      = Register(Info{Name: "Or", Parent: GrammarNode, Separator: " | "})
	Difference              = Register(Info{Name: "Difference", Parent: GrammarNode, Separator: " - "})
	ZeroOrMore              = Register(Info{Name: "ZeroOrMore", Parent: GrammarNode, Post: "*"})
	OneOrMore               = Register(Info{Name: "OneOrMore", Parent: GrammarNode, Post: "+"})
	Optional                = Register(Info{Name: "Optional", Parent: GrammarNode, Post: "?"})
	CharacterClass          = Register(Info{Name: "CharacterClass", Parent: GrammarNode, Class: "character-class", Pre: "[", Post: "]"})
	CharacterClassItem      = Register(Info{Name: "CharacterClassItem", Parent: GrammarNode})
	CharacterRange          = Register(Info{Name: "CharacterRange", Parent: CharacterClassItem, Class: "character-range", Separator: "-"})
	CharacterClassCharacter = Register(Info{Name: "CharacterClassCharacter", Parent: CharacterClassItem, Class: "character"})
	ParenthesizedGroup      = Register(Info{Name: "ParenthesizedGroup", Parent: GrammarNode, Pre: "(", Post: ")"})
	BlockComment            = Register(Info{Name: "BlockComment", Parent: GrammarNode, Class: "block-comment"})
	VariableIntroducer      = Register(Info{Name: "VariableIntroducer", Parent: GrammarNode, Class: "introducer", Separator: ":"})
	Alternative             = Register(Info{Name: "Alternative", Parent: GrammarNode, Class: "alternative", Separator: " ", Pre: "⇒ "})
	GrammarSequence         = Register(Info{Name: "GrammarSequence", Parent: GrammarNode, Class: "sequence", Separator: " "})
)
