package eqscript

// Option configures a Converter.
type Option func(*Converter)

// WithVersion sets the equation version written into Equation metadata.
func WithVersion(version string) Option {
	return func(c *Converter) {
		c.version = version
	}
}

// WithTextColor sets the text colour, "#RRGGBB".
func WithTextColor(color string) Option {
	return func(c *Converter) {
		c.textColor = color
	}
}

// WithBaseUnit sets the base font size in 1/100 pt.
func WithBaseUnit(unit int) Option {
	return func(c *Converter) {
		c.baseUnit = unit
	}
}

func WithLineMode(mode LineMode) Option {
	return func(c *Converter) {
		c.lineMode = mode
	}
}

func WithFont(font string) Option {
	return func(c *Converter) {
		c.font = font
	}
}

// WithMaxDepth limits nesting accepted by the parsers (default: 256).
func WithMaxDepth(depth int) Option {
	return func(c *Converter) {
		if depth > 0 {
			c.maxDepth = depth
		}
	}
}
