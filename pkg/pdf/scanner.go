package pdf

import (
	"bytes"
	"strconv"
	"strings"

	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/types"
)

// ContentScanner walks a page content stream and collects the text spans,
// stroked lines and rectangles it draws. Coordinates in the resulting
// objects use a top-left origin with Y growing downward.
type ContentScanner struct {
	ctx        *model.Context
	pageDict   types.Dict
	pageHeight float64
	objects    Objects

	// Graphics state
	ctm        Matrix
	ctmStack   []Matrix
	lineWidth  float64
	widthStack []float64

	// Text state
	textMatrix Matrix
	lineMatrix Matrix
	fontName   string
	fontSize   float64
	leading    float64
	charSpace  float64
	wordSpace  float64

	// Current path
	path []pathPoint

	fonts map[string]string
}

// Matrix represents a 2D transformation matrix
type Matrix struct {
	A, B, C, D, E, F float64
}

type pathPoint struct {
	op   string // moveto, lineto, close
	x, y float64
}

// NewContentScanner creates a scanner for a single page. The page height
// is needed to flip PDF bottom-left coordinates to top-left.
func NewContentScanner(ctx *model.Context, pageDict types.Dict, pageHeight float64) *ContentScanner {
	s := &ContentScanner{
		ctx:        ctx,
		pageDict:   pageDict,
		pageHeight: pageHeight,
		ctm:        IdentityMatrix(),
		textMatrix: IdentityMatrix(),
		lineMatrix: IdentityMatrix(),
		lineWidth:  1.0,
		fontSize:   12,
		fonts:      make(map[string]string),
	}
	s.resolveFonts()
	return s
}

// resolveFonts maps resource font names to their BaseFont names. The
// BaseFont carries the style suffix ("-Bold", "-Italic") that callers
// inspect for emphasis.
func (s *ContentScanner) resolveFonts() {
	if s.pageDict == nil {
		return
	}

	res, err := s.ctx.DereferenceDict(s.pageDict["Resources"])
	if err != nil || res == nil {
		return
	}

	fontDict, err := s.ctx.DereferenceDict(res["Font"])
	if err != nil || fontDict == nil {
		return
	}

	for name, ref := range fontDict {
		dict, err := s.ctx.DereferenceDict(ref)
		if err != nil || dict == nil {
			continue
		}
		if base, ok := dict["BaseFont"].(types.Name); ok {
			// Strip the subset prefix (e.g. "ABCDEF+Helvetica-Bold")
			baseName := string(base)
			if idx := strings.IndexByte(baseName, '+'); idx == 6 {
				baseName = baseName[7:]
			}
			s.fonts[name] = baseName
		} else {
			s.fonts[name] = name
		}
	}
}

// Scan tokenizes the content stream and replays its operators, returning
// the collected page objects.
func (s *ContentScanner) Scan(content []byte) (Objects, error) {
	tokens := tokenize(content)

	var operands []string
	for _, token := range tokens {
		if isOperator(token) {
			s.apply(token, operands)
			operands = operands[:0]
		} else {
			operands = append(operands, token)
		}
	}

	return s.objects, nil
}

// apply executes a single content stream operator
func (s *ContentScanner) apply(op string, operands []string) {
	switch op {
	case "BT":
		s.textMatrix = IdentityMatrix()
		s.lineMatrix = IdentityMatrix()
	case "ET":
		// Text object ended

	case "Td":
		s.textMove(operands)
	case "TD":
		if len(operands) >= 2 {
			s.leading = -parseFloat(operands[1])
		}
		s.textMove(operands)
	case "Tm":
		if len(operands) >= 6 {
			s.textMatrix = Matrix{
				A: parseFloat(operands[0]), B: parseFloat(operands[1]),
				C: parseFloat(operands[2]), D: parseFloat(operands[3]),
				E: parseFloat(operands[4]), F: parseFloat(operands[5]),
			}
			s.lineMatrix = s.textMatrix
		}
	case "T*":
		s.textNextLine()
	case "TL":
		if len(operands) >= 1 {
			s.leading = parseFloat(operands[0])
		}
	case "Tc":
		if len(operands) >= 1 {
			s.charSpace = parseFloat(operands[0])
		}
	case "Tw":
		if len(operands) >= 1 {
			s.wordSpace = parseFloat(operands[0])
		}
	case "Tf":
		if len(operands) >= 2 {
			s.fontName = strings.TrimPrefix(operands[0], "/")
			s.fontSize = parseFloat(operands[1])
		}

	case "Tj":
		if len(operands) >= 1 {
			s.showText(decodeStringToken(operands[0]))
		}
	case "TJ":
		s.showTextArray(operands)
	case "'":
		s.textNextLine()
		if len(operands) >= 1 {
			s.showText(decodeStringToken(operands[0]))
		}
	case "\"":
		if len(operands) >= 3 {
			s.wordSpace = parseFloat(operands[0])
			s.charSpace = parseFloat(operands[1])
			s.textNextLine()
			s.showText(decodeStringToken(operands[2]))
		}

	case "q":
		s.ctmStack = append(s.ctmStack, s.ctm)
		s.widthStack = append(s.widthStack, s.lineWidth)
	case "Q":
		if n := len(s.ctmStack); n > 0 {
			s.ctm = s.ctmStack[n-1]
			s.ctmStack = s.ctmStack[:n-1]
		}
		if n := len(s.widthStack); n > 0 {
			s.lineWidth = s.widthStack[n-1]
			s.widthStack = s.widthStack[:n-1]
		}
	case "cm":
		if len(operands) >= 6 {
			m := Matrix{
				A: parseFloat(operands[0]), B: parseFloat(operands[1]),
				C: parseFloat(operands[2]), D: parseFloat(operands[3]),
				E: parseFloat(operands[4]), F: parseFloat(operands[5]),
			}
			s.ctm = MultiplyMatrix(m, s.ctm)
		}
	case "w":
		if len(operands) >= 1 {
			s.lineWidth = parseFloat(operands[0])
		}

	case "m":
		if len(operands) >= 2 {
			s.path = append(s.path, pathPoint{op: "moveto", x: parseFloat(operands[0]), y: parseFloat(operands[1])})
		}
	case "l":
		if len(operands) >= 2 {
			s.path = append(s.path, pathPoint{op: "lineto", x: parseFloat(operands[0]), y: parseFloat(operands[1])})
		}
	case "h":
		s.path = append(s.path, pathPoint{op: "close"})
	case "re":
		s.rectangle(operands)

	case "S", "s":
		s.strokePath()
		s.path = nil
	case "f", "F", "f*":
		s.fillPath()
		s.path = nil
	case "B", "B*", "b", "b*":
		s.fillPath()
		s.strokePath()
		s.path = nil
	case "n":
		s.path = nil
	}
}

func (s *ContentScanner) textMove(operands []string) {
	if len(operands) < 2 {
		return
	}
	translation := TranslationMatrix(parseFloat(operands[0]), parseFloat(operands[1]))
	s.lineMatrix = MultiplyMatrix(translation, s.lineMatrix)
	s.textMatrix = s.lineMatrix
}

func (s *ContentScanner) textNextLine() {
	translation := TranslationMatrix(0, -s.leading)
	s.lineMatrix = MultiplyMatrix(translation, s.lineMatrix)
	s.textMatrix = s.lineMatrix
}

// showText emits one span for a text-showing operation and advances the
// text matrix past it.
func (s *ContentScanner) showText(text string) {
	if text == "" {
		return
	}

	startX, baseline := s.transform(s.textMatrix.E, s.textMatrix.F)

	width := 0.0
	for _, r := range text {
		width += charWidthFactor(r) * s.fontSize
	}
	width += float64(len([]rune(text))) * s.charSpace
	width += float64(strings.Count(text, " ")) * s.wordSpace

	// Flip the baseline to a top-left box around the glyphs
	y0 := s.pageHeight - (baseline + s.fontSize*0.8)

	span := SpanObject{
		Text:     text,
		Font:     s.currentFont(),
		FontSize: s.fontSize,
		X0:       startX,
		Y0:       y0,
		X1:       startX + width,
		Y1:       y0 + s.fontSize,
	}
	s.objects.Spans = append(s.objects.Spans, span)

	s.textMatrix.E += width * s.textMatrix.A
	s.textMatrix.F += width * s.textMatrix.B
}

// showTextArray handles the TJ operator. Adjacent strings in the array
// are merged into one span unless a large kerning gap separates them.
func (s *ContentScanner) showTextArray(operands []string) {
	arrayStr := strings.Join(operands, " ")
	if !strings.HasPrefix(arrayStr, "[") {
		return
	}
	arrayStr = strings.TrimPrefix(arrayStr, "[")
	arrayStr = strings.TrimSuffix(arrayStr, "]")

	var pending strings.Builder
	flush := func() {
		if pending.Len() > 0 {
			s.showText(pending.String())
			pending.Reset()
		}
	}

	for _, elem := range splitTextArray(arrayStr) {
		if strings.HasPrefix(elem, "(") || strings.HasPrefix(elem, "<") {
			pending.WriteString(decodeStringToken(elem))
			continue
		}

		// Negative adjustments larger than half the glyph size act as
		// word gaps in most generators
		adj := parseFloat(elem)
		if adj < -200 {
			flush()
			shift := -adj / 1000.0 * s.fontSize
			s.textMatrix.E += shift * s.textMatrix.A
			s.textMatrix.F += shift * s.textMatrix.B
		}
	}
	flush()
}

func (s *ContentScanner) currentFont() string {
	if base, ok := s.fonts[s.fontName]; ok {
		return base
	}
	return s.fontName
}

func (s *ContentScanner) rectangle(operands []string) {
	if len(operands) < 4 {
		return
	}
	x := parseFloat(operands[0])
	y := parseFloat(operands[1])
	w := parseFloat(operands[2])
	h := parseFloat(operands[3])

	s.path = append(s.path,
		pathPoint{op: "moveto", x: x, y: y},
		pathPoint{op: "lineto", x: x + w, y: y},
		pathPoint{op: "lineto", x: x + w, y: y + h},
		pathPoint{op: "lineto", x: x, y: y + h},
		pathPoint{op: "close"},
	)
}

// strokePath converts the current path segments into line objects
func (s *ContentScanner) strokePath() {
	var curX, curY, startX, startY float64
	haveStart := false

	emit := func(x0, y0, x1, y1 float64) {
		px0, py0 := s.transform(x0, y0)
		px1, py1 := s.transform(x1, y1)
		s.objects.Lines = append(s.objects.Lines, LineObject{
			X0:    min(px0, px1),
			Y0:    s.pageHeight - max(py0, py1),
			X1:    max(px0, px1),
			Y1:    s.pageHeight - min(py0, py1),
			Width: s.lineWidth,
		})
	}

	for _, pt := range s.path {
		switch pt.op {
		case "moveto":
			curX, curY = pt.x, pt.y
			startX, startY = pt.x, pt.y
			haveStart = true
		case "lineto":
			if haveStart {
				emit(curX, curY, pt.x, pt.y)
			}
			curX, curY = pt.x, pt.y
		case "close":
			if haveStart && (curX != startX || curY != startY) {
				emit(curX, curY, startX, startY)
				curX, curY = startX, startY
			}
		}
	}
}

// fillPath converts a rectangular path into a filled rect object. Thin
// filled rectangles commonly stand in for ruled lines, so those are
// emitted as lines as well.
func (s *ContentScanner) fillPath() {
	if !isRectanglePath(s.path) {
		return
	}

	minX, minY, maxX, maxY := pathBounds(s.path)
	px0, py0 := s.transform(minX, minY)
	px1, py1 := s.transform(maxX, maxY)

	rect := RectObject{
		X0:     min(px0, px1),
		Y0:     s.pageHeight - max(py0, py1),
		X1:     max(px0, px1),
		Y1:     s.pageHeight - min(py0, py1),
		Filled: true,
	}
	s.objects.Rects = append(s.objects.Rects, rect)

	w := rect.X1 - rect.X0
	h := rect.Y1 - rect.Y0
	if w <= 2.0 || h <= 2.0 {
		s.objects.Lines = append(s.objects.Lines, LineObject{
			X0: rect.X0, Y0: rect.Y0, X1: rect.X1, Y1: rect.Y1,
			Width: min(w, h),
		})
	}
}

// transform applies the current transformation matrix to a point
func (s *ContentScanner) transform(x, y float64) (float64, float64) {
	return s.ctm.A*x + s.ctm.C*y + s.ctm.E, s.ctm.B*x + s.ctm.D*y + s.ctm.F
}

func isRectanglePath(path []pathPoint) bool {
	lines, closed := 0, false
	for _, pt := range path {
		switch pt.op {
		case "lineto":
			lines++
		case "close":
			closed = true
		}
	}
	return lines == 3 && closed
}

func pathBounds(path []pathPoint) (minX, minY, maxX, maxY float64) {
	first := true
	for _, pt := range path {
		if pt.op == "close" {
			continue
		}
		if first {
			minX, maxX = pt.x, pt.x
			minY, maxY = pt.y, pt.y
			first = false
			continue
		}
		minX = min(minX, pt.x)
		maxX = max(maxX, pt.x)
		minY = min(minY, pt.y)
		maxY = max(maxY, pt.y)
	}
	return
}

// charWidthFactor returns an approximate advance factor for a glyph.
// Exact widths would need per-font metrics; this estimate keeps span
// boxes proportional, which is all downstream alignment needs.
func charWidthFactor(r rune) float64 {
	switch r {
	case ' ':
		return 0.25
	case 'i', 'l', 'I', 'j', 't', 'f', '!', '.', ',', ';', ':', '\'', '|':
		return 0.3
	case 'm', 'M', 'W', 'w':
		return 0.8
	default:
		return 0.5
	}
}

// Tokenizer

// tokenize splits a content stream into string, name and bare tokens
func tokenize(content []byte) []string {
	var tokens []string
	reader := bytes.NewReader(content)

	for reader.Len() > 0 {
		b, err := reader.ReadByte()
		if err != nil {
			break
		}
		if isWhitespace(b) {
			continue
		}

		switch b {
		case '(':
			tokens = append(tokens, "("+readStringLiteral(reader)+")")
		case '<':
			next, _ := reader.ReadByte()
			if next == '<' {
				tokens = append(tokens, "<<")
			} else {
				reader.UnreadByte()
				tokens = append(tokens, "<"+readHexString(reader)+">")
			}
		case '>':
			next, _ := reader.ReadByte()
			if next == '>' {
				tokens = append(tokens, ">>")
			} else {
				reader.UnreadByte()
			}
		case '[':
			tokens = append(tokens, "[")
		case ']':
			tokens = append(tokens, "]")
		case '/':
			tokens = append(tokens, "/"+readBareToken(reader))
		case '%':
			skipComment(reader)
		default:
			reader.UnreadByte()
			if token := readBareToken(reader); token != "" {
				tokens = append(tokens, token)
			}
		}
	}

	return tokens
}

func readStringLiteral(reader *bytes.Reader) string {
	var result []byte
	depth := 1

	for reader.Len() > 0 {
		b, err := reader.ReadByte()
		if err != nil {
			break
		}
		switch {
		case b == '\\':
			next, _ := reader.ReadByte()
			result = append(result, '\\', next)
		case b == '(':
			depth++
			result = append(result, b)
		case b == ')':
			depth--
			if depth == 0 {
				return string(result)
			}
			result = append(result, b)
		default:
			result = append(result, b)
		}
	}
	return string(result)
}

func readHexString(reader *bytes.Reader) string {
	var result []byte
	for reader.Len() > 0 {
		b, err := reader.ReadByte()
		if err != nil || b == '>' {
			break
		}
		if !isWhitespace(b) {
			result = append(result, b)
		}
	}
	return string(result)
}

func readBareToken(reader *bytes.Reader) string {
	var result []byte
	for reader.Len() > 0 {
		b, err := reader.ReadByte()
		if err != nil {
			break
		}
		if isDelimiter(b) || isWhitespace(b) {
			reader.UnreadByte()
			break
		}
		result = append(result, b)
	}
	return string(result)
}

func skipComment(reader *bytes.Reader) {
	for reader.Len() > 0 {
		b, _ := reader.ReadByte()
		if b == '\n' || b == '\r' {
			break
		}
	}
}

func isWhitespace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r' || b == '\f' || b == 0
}

func isDelimiter(b byte) bool {
	return b == '(' || b == ')' || b == '<' || b == '>' || b == '[' || b == ']' ||
		b == '{' || b == '}' || b == '/' || b == '%'
}

var contentOperators = map[string]bool{
	"BT": true, "ET": true, "Td": true, "TD": true, "Tm": true, "T*": true,
	"Tj": true, "TJ": true, "'": true, "\"": true,
	"Tc": true, "Tw": true, "Tz": true, "TL": true, "Tf": true, "Tr": true, "Ts": true,
	"q": true, "Q": true, "cm": true, "w": true, "J": true, "j": true, "M": true,
	"d": true, "ri": true, "i": true, "gs": true,
	"m": true, "l": true, "c": true, "v": true, "y": true, "h": true, "re": true,
	"S": true, "s": true, "f": true, "F": true, "f*": true,
	"B": true, "B*": true, "b": true, "b*": true, "n": true,
	"CS": true, "cs": true, "SC": true, "SCN": true, "sc": true, "scn": true,
	"G": true, "g": true, "RG": true, "rg": true, "K": true, "k": true,
	"W": true, "W*": true, "BX": true, "EX": true, "Do": true,
	"MP": true, "DP": true, "BMC": true, "BDC": true, "EMC": true,
}

func isOperator(token string) bool {
	return contentOperators[token]
}

// decodeStringToken converts a "(...)" or "<...>" token to its text
func decodeStringToken(token string) string {
	if strings.HasPrefix(token, "(") && strings.HasSuffix(token, ")") {
		return unescapeString(strings.TrimSuffix(strings.TrimPrefix(token, "("), ")"))
	}
	if strings.HasPrefix(token, "<") && strings.HasSuffix(token, ">") {
		return decodeHexToken(strings.TrimSuffix(strings.TrimPrefix(token, "<"), ">"))
	}
	return token
}

// unescapeString resolves PDF string escape sequences
func unescapeString(str string) string {
	var result strings.Builder
	for i := 0; i < len(str); i++ {
		if str[i] != '\\' || i+1 >= len(str) {
			result.WriteByte(str[i])
			continue
		}
		switch str[i+1] {
		case 'n':
			result.WriteByte('\n')
			i++
		case 'r':
			result.WriteByte('\r')
			i++
		case 't':
			result.WriteByte('\t')
			i++
		case 'b':
			result.WriteByte('\b')
			i++
		case 'f':
			result.WriteByte('\f')
			i++
		case '(', ')', '\\':
			result.WriteByte(str[i+1])
			i++
		default:
			if str[i+1] >= '0' && str[i+1] <= '7' {
				end := i + 4
				if end > len(str) {
					end = len(str)
				}
				if val, err := strconv.ParseInt(str[i+1:end], 8, 16); err == nil {
					result.WriteByte(byte(val))
					i += end - i - 1
					continue
				}
			}
			result.WriteByte(str[i])
		}
	}
	return result.String()
}

func decodeHexToken(hexStr string) string {
	var result strings.Builder
	for i := 0; i < len(hexStr); i += 2 {
		pair := hexStr[i:min2(i+2, len(hexStr))]
		if len(pair) == 1 {
			pair += "0"
		}
		if val, err := strconv.ParseInt(pair, 16, 16); err == nil {
			result.WriteByte(byte(val))
		}
	}
	return result.String()
}

func min2(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// splitTextArray splits the interior of a TJ array into string and
// number elements
func splitTextArray(arrayStr string) []string {
	var elements []string
	var current strings.Builder
	inString := false
	inHex := false
	depth := 0

	flush := func() {
		if current.Len() > 0 {
			elements = append(elements, current.String())
			current.Reset()
		}
	}

	for i := 0; i < len(arrayStr); i++ {
		ch := arrayStr[i]

		switch {
		case inString:
			current.WriteByte(ch)
			if ch == '\\' && i+1 < len(arrayStr) {
				i++
				current.WriteByte(arrayStr[i])
			} else if ch == '(' {
				depth++
			} else if ch == ')' {
				depth--
				if depth == 0 {
					inString = false
					flush()
				}
			}
		case inHex:
			current.WriteByte(ch)
			if ch == '>' {
				inHex = false
				flush()
			}
		case ch == '(':
			flush()
			inString = true
			depth = 1
			current.WriteByte(ch)
		case ch == '<':
			flush()
			inHex = true
			current.WriteByte(ch)
		case isWhitespace(ch):
			flush()
		default:
			current.WriteByte(ch)
		}
	}
	flush()

	return elements
}

// Matrix operations

func IdentityMatrix() Matrix {
	return Matrix{A: 1, D: 1}
}

func TranslationMatrix(tx, ty float64) Matrix {
	return Matrix{A: 1, D: 1, E: tx, F: ty}
}

func MultiplyMatrix(m1, m2 Matrix) Matrix {
	return Matrix{
		A: m1.A*m2.A + m1.B*m2.C,
		B: m1.A*m2.B + m1.B*m2.D,
		C: m1.C*m2.A + m1.D*m2.C,
		D: m1.C*m2.B + m1.D*m2.D,
		E: m1.E*m2.A + m1.F*m2.C + m2.E,
		F: m1.E*m2.B + m1.F*m2.D + m2.F,
	}
}

func parseFloat(s string) float64 {
	f, _ := strconv.ParseFloat(s, 64)
	return f
}
