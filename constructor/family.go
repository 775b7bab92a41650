package constructor

import "github.com/sousouindustries/amqptype/format"

// Family groups the format codes available for one variable-length or
// collection "shape": an optional zero-length variant, an optional short
// (1-octet size/count) variant, and an always-present long (4-octet)
// variant.
type Family struct {
	HasZero bool
	Zero    format.Code

	HasShort bool
	Short    format.Code

	Long format.Code
}

// Choose implements spec §4.2 step 2: prefer the zero-length variant when
// length is zero, else the short variant when the combined size/count
// indicator fits in one octet, else the long variant. The size counts the
// 1-octet count field plus the body, and the short form holds only while
// that size plus one stays within 255, i.e. body+2 <= 255 (spec §4.4).
func (f Family) Choose(length, count int) format.Code {
	if f.HasZero && length == 0 {
		return f.Zero
	}

	indicator := length + 2
	if count+1 > indicator {
		indicator = count + 1
	}
	if f.HasShort && indicator <= 255 {
		return f.Short
	}

	return f.Long
}

// Families for the shapes this package frames. Integer small/zero-form
// selection is handled by codec.EncodeInteger instead, since it depends
// on the encoded value's magnitude rather than a payload length.
var (
	StrFamily   = Family{HasShort: true, Short: format.Str8, Long: format.Str32}
	SymFamily   = Family{HasShort: true, Short: format.Sym8, Long: format.Sym32}
	BinFamily   = Family{HasShort: true, Short: format.VBin8, Long: format.VBin32}
	ListFamily  = Family{HasZero: true, Zero: format.List0, HasShort: true, Short: format.List8, Long: format.List32}
	MapFamily   = Family{HasShort: true, Short: format.Map8, Long: format.Map32}
	ArrayFamily = Family{HasShort: true, Short: format.Array8, Long: format.Array32}
)
