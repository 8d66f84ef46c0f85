package eqscript

// Tables below are initialized once and only read afterwards, they are safe
// for concurrent use.

// greekLetters maps LaTeX Greek letter commands to script tokens
var greekLetters = map[string]string{
	"alpha":      "alpha",
	"beta":       "beta",
	"gamma":      "gamma",
	"delta":      "delta",
	"epsilon":    "epsilon",
	"varepsilon": "varepsilon",
	"zeta":       "zeta",
	"eta":        "eta",
	"theta":      "theta",
	"vartheta":   "vartheta",
	"iota":       "iota",
	"kappa":      "kappa",
	"lambda":     "lambda",
	"mu":         "mu",
	"nu":         "nu",
	"xi":         "xi",
	"pi":         "pi",
	"varpi":      "varpi",
	"rho":        "rho",
	"varrho":     "varrho",
	"sigma":      "sigma",
	"varsigma":   "varsigma",
	"tau":        "tau",
	"upsilon":    "upsilon",
	"phi":        "phi",
	"varphi":     "varphi",
	"chi":        "chi",
	"psi":        "psi",
	"omega":      "omega",

	"Gamma":   "GAMMA",
	"Delta":   "DELTA",
	"Theta":   "THETA",
	"Lambda":  "LAMBDA",
	"Xi":      "XI",
	"Pi":      "PI",
	"Sigma":   "SIGMA",
	"Upsilon": "UPSILON",
	"Phi":     "PHI",
	"Psi":     "PSI",
	"Omega":   "OMEGA",
}

// symbols maps operator, relation, arrow and other symbol commands to script tokens
var symbols = map[string]string{
	// operators
	"times":  "times",
	"cdot":   "cdot",
	"div":    "div",
	"pm":     "+-",
	"mp":     "-+",
	"circ":   "circ",
	"bullet": "bullet",
	"ast":    "ast",
	"star":   "star",

	// relations
	"leq":    "leq",
	"le":     "leq",
	"geq":    "geq",
	"ge":     "geq",
	"neq":    "neq",
	"ne":     "neq",
	"approx": "approx",
	"equiv":  "equiv",
	"sim":    "sim",
	"simeq":  "simeq",
	"cong":   "cong",
	"propto": "propto",
	"ll":     "<<",
	"gg":     ">>",
	"prec":   "prec",
	"succ":   "succ",
	"doteq":  "doteq",
	"asymp":  "asymp",

	// sets
	"in":         "in",
	"ni":         "owns",
	"notin":      "notin",
	"subset":     "subset",
	"supset":     "supset",
	"subseteq":   "subseteq",
	"supseteq":   "supseteq",
	"cap":        "cap",
	"cup":        "cup",
	"emptyset":   "emptyset",
	"varnothing": "emptyset",

	// logic
	"forall":    "forall",
	"exists":    "exist",
	"neg":       "lnot",
	"lnot":      "lnot",
	"vee":       "vee",
	"wedge":     "wedge",
	"therefore": "therefore",
	"because":   "because",
	"vdash":     "vdash",
	"models":    "models",
	"bot":       "bot",
	"top":       "top",
	"perp":      "bot",

	// misc
	"partial":  "partial",
	"nabla":    "LAPLACE",
	"infty":    "inf",
	"prime":    "prime",
	"angle":    "angle",
	"triangle": "triangle",
	"diamond":  "diamond",
	"dagger":   "dagger",
	"ddagger":  "ddagger",
	"aleph":    "aleph",
	"hbar":     "hbar",
	"imath":    "imath",
	"jmath":    "jmath",
	"ell":      "ell",
	"wp":       "wp",
	"Re":       "imag",
	"Im":       "image",

	// arrows
	"rightarrow":     "->",
	"to":             "->",
	"leftarrow":      "<-",
	"gets":           "<-",
	"leftrightarrow": "<->",
	"Rightarrow":     "=>",
	"Leftarrow":      "<=",
	"Leftrightarrow": "<=>",
	"uparrow":        "uparrow",
	"downarrow":      "downarrow",
	"Uparrow":        "UPARROW",
	"Downarrow":      "DOWNARROW",
	"nearrow":        "nearrow",
	"searrow":        "searrow",
	"nwarrow":        "nwarrow",
	"swarrow":        "swarrow",
	"mapsto":         "mapsto",
	"hookleftarrow":  "hookleft",
	"hookrightarrow": "hookright",

	// dots
	"ldots": "ldots",
	"cdots": "cdots",
	"vdots": "vdots",
	"ddots": "ddots",
	"dots":  "cdots",

	// circled operators
	"oplus":  "oplus",
	"ominus": "ominus",
	"otimes": "otimes",
	"odot":   "odot",
	"oslash": "oslash",

	// braces outside of \left...\right
	"{":      "lbrace",
	"}":      "rbrace",
	"lbrace": "lbrace",
	"rbrace": "rbrace",

	// spacing
	"thinspace":    "`",
	"thickspace":   "~",
	"negthinspace": "",
	"space":        "~",
	"quad":         "~~",
	"qquad":        "~~~~",
}

// spacingCommands are the one-character spacing commands (\, \; \! and "\ ")
var spacingCommands = map[string]string{
	",": "thinspace",
	";": "thickspace",
	"!": "negthinspace",
	" ": "space",
}

var functionNames = map[string]string{
	"sin":    "sin",
	"cos":    "cos",
	"tan":    "tan",
	"cot":    "cot",
	"sec":    "sec",
	"csc":    "csc",
	"arcsin": "arcsin",
	"arccos": "arccos",
	"arctan": "arctan",
	"sinh":   "sinh",
	"cosh":   "cosh",
	"tanh":   "tanh",
	"coth":   "coth",
	"log":    "log",
	"ln":     "ln",
	"lg":     "lg",
	"exp":    "exp",
	"det":    "det",
	"gcd":    "gcd",
	"max":    "max",
	"min":    "min",
	"sup":    "sup",
	"inf":    "inf",
	"lim":    "lim",
	"limsup": "limsup",
	"liminf": "liminf",
	"arg":    "arg",
	"deg":    "deg",
	"dim":    "dim",
	"hom":    "hom",
	"ker":    "ker",
	"Pr":     "Pr",
	"mod":    "mod",
}

var bigOperators = map[string]string{
	"sum":       "sum",
	"prod":      "prod",
	"coprod":    "coprod",
	"int":       "int",
	"oint":      "oint",
	"iint":      "dint",
	"iiint":     "tint",
	"bigcup":    "union",
	"bigcap":    "inter",
	"bigoplus":  "bigoplus",
	"bigotimes": "bigotimes",
	"bigvee":    "bigvee",
	"bigwedge":  "bigwedge",
}

// accents maps accent commands to script decoration tokens
var accents = map[string]string{
	"hat":            "HAT",
	"widehat":        "HAT",
	"check":          "CHECK",
	"tilde":          "TILDE",
	"widetilde":      "TILDE",
	"acute":          "ACUTE",
	"grave":          "GRAVE",
	"dot":            "DOT",
	"ddot":           "DDOT",
	"bar":            "BAR",
	"vec":            "VEC",
	"overline":       "OVERLINE",
	"underline":      "UNDERLINE",
	"overbrace":      "OVERBRACE",
	"underbrace":     "UNDERBRACE",
	"overrightarrow": "OVERARROW",
}

// delimiter maps a \left / \right delimiter to its script token
func delimiter(d string) string {
	switch d {
	case ".":
		return "NONE"
	case "\\{":
		return "lbrace"
	case "\\}":
		return "rbrace"
	case "Vert":
		return "||"
	default:
		// lfloor, rfloor, lceil, rceil, <, > and plain brackets are valid as is
		return d
	}
}

// unicodeSymbols maps MathML characters to the names used by the LaTeX tables
var unicodeSymbols = map[string]string{
	"α": "alpha",
	"β": "beta",
	"γ": "gamma",
	"δ": "delta",
	"ε": "epsilon",
	"ϵ": "epsilon",
	"ζ": "zeta",
	"η": "eta",
	"θ": "theta",
	"ϑ": "vartheta",
	"ι": "iota",
	"κ": "kappa",
	"λ": "lambda",
	"μ": "mu",
	"ν": "nu",
	"ξ": "xi",
	"π": "pi",
	"ϖ": "varpi",
	"ρ": "rho",
	"ϱ": "varrho",
	"σ": "sigma",
	"ς": "varsigma",
	"τ": "tau",
	"υ": "upsilon",
	"φ": "phi",
	"ϕ": "varphi",
	"χ": "chi",
	"ψ": "psi",
	"ω": "omega",

	"Γ": "Gamma",
	"Δ": "Delta",
	"Θ": "Theta",
	"Λ": "Lambda",
	"Ξ": "Xi",
	"Π": "Pi",
	"Σ": "Sigma",
	"Υ": "Upsilon",
	"Φ": "Phi",
	"Ψ": "Psi",
	"Ω": "Omega",

	"∞": "infty",
	"∂": "partial",
	"∇": "nabla",
	"∀": "forall",
	"∃": "exists",
	"∅": "emptyset",
	"¬": "neg",

	"×": "times",
	"÷": "div",
	"±": "pm",
	"∓": "mp",
	"⋅": "cdot",
	"·": "cdot",
	"∘": "circ",
	"−": "-",
	"∣": "|",

	"≤": "leq",
	"≥": "geq",
	"≠": "neq",
	"≈": "approx",
	"≡": "equiv",
	"∼": "sim",
	"∝": "propto",
	"≪": "ll",
	"≫": "gg",

	"∈": "in",
	"∋": "ni",
	"∉": "notin",
	"⊂": "subset",
	"⊃": "supset",
	"⊆": "subseteq",
	"⊇": "supseteq",
	"∩": "cap",
	"∪": "cup",

	"→": "rightarrow",
	"←": "leftarrow",
	"↔": "leftrightarrow",
	"⇒": "Rightarrow",
	"⇐": "Leftarrow",
	"⇔": "Leftrightarrow",
	"↑": "uparrow",
	"↓": "downarrow",
	"↦": "mapsto",

	"…": "ldots",
	"⋯": "cdots",
	"⋮": "vdots",
	"⋱": "ddots",

	"∨": "vee",
	"∧": "wedge",
	"∴": "therefore",
	"∵": "because",
	"⊢": "vdash",

	"ℏ": "hbar",
	"ℓ": "ell",
	"′": "prime",
	"∠": "angle",
}

// unicodeBigOperators maps MathML large operator characters to big operator names
var unicodeBigOperators = map[string]string{
	"∑": "sum",
	"∏": "prod",
	"∐": "coprod",
	"∫": "int",
	"∮": "oint",
	"∬": "iint",
	"∭": "iiint",
	"⋃": "bigcup",
	"⋂": "bigcap",
	"⨁": "bigoplus",
	"⨂": "bigotimes",
	"⋁": "bigvee",
	"⋀": "bigwedge",
}

// overAccents maps marks placed over a base by <mover> to accent names
var overAccents = map[string]string{
	"^":        "hat",
	"\u02C6":   "hat",
	"\u0302":   "hat",
	"\u02C7":   "check",
	"~":        "tilde",
	"\u02DC":   "tilde",
	"\u0303":   "tilde",
	"\u00B4":   "acute",
	"`":        "grave",
	"\u02D9":   "dot",
	"\u0307":   "dot",
	"\u00A8":   "ddot",
	"\u0308":   "ddot",
	"\u00AF":   "bar",
	"\u0304":   "bar",
	"\u2192":   "overrightarrow",
	"\u20D7":   "vec",
	"\u203E":   "overline",
	"overline": "overline",
	"\u23DE":   "overbrace",
}

// underAccents maps marks placed under a base by <munder> to accent names
var underAccents = map[string]string{
	"_":      "underline",
	"\u0332": "underline",
	"\u23DF": "underbrace",
}

// fences maps <mfenced> open and close characters to \left / \right delimiters
var fences = map[string]string{
	"{": "\\{",
	"}": "\\}",
	"⟨": "<",
	"〈": "<",
	"⟩": ">",
	"〉": ">",
	"‖": "Vert",
	"∣": "|",
	"⌊": "lfloor",
	"⌋": "rfloor",
	"⌈": "lceil",
	"⌉": "rceil",
}

// invisibleOperators carry no visual content and are dropped from MathML input
var invisibleOperators = map[string]bool{
	"\u2061": true, // function application
	"\u2062": true, // invisible times
	"\u2063": true, // invisible separator
	"\u2064": true, // invisible plus
}
