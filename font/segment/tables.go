package segment

// def places a segment on the 2×2 grid: origin (x0, y0), direction
// (dx, dy) and, for vertical segments only, a square end cap.
type def struct {
	x0, y0 float64
	dx, dy float64
	square bool
}

// 16 segments:
//
//	   -A-  -B-
//	|C \D |E /F |G
//	   -H-  -I-
//	|J /K |L \M |N
//	   -O-  -P-
var defs16 = []def{
	{x0: 0, y0: 2, dx: 1, dy: 0},
	{x0: 1, y0: 2, dx: 1, dy: 0},

	{x0: 0, y0: 1, dx: 0, dy: 1},
	{x0: 0, y0: 1, dx: 1, dy: 1},
	{x0: 1, y0: 1, dx: 0, dy: 1},
	{x0: 2, y0: 1, dx: -1, dy: 1},
	{x0: 2, y0: 1, dx: 0, dy: 1},

	{x0: 0, y0: 1, dx: 1, dy: 0},
	{x0: 1, y0: 1, dx: 1, dy: 0},

	{x0: 0, y0: 0, dx: 0, dy: 1},
	{x0: 0, y0: 1, dx: 1, dy: -1},
	{x0: 1, y0: 0, dx: 0, dy: 1},
	{x0: 2, y0: 1, dx: -1, dy: -1},
	{x0: 2, y0: 0, dx: 0, dy: 1},

	{x0: 0, y0: 0, dx: 1, dy: 0},
	{x0: 1, y0: 0, dx: 1, dy: 0},
}

// 14 segments:
//
//	    --A--
//	|B \C |D /E |F
//	   -G-  -H-
//	|I /J |K \L |M
//	    --N--
var defs14 = []def{
	{x0: 0, y0: 2, dx: 2, dy: 0},

	{x0: 0, y0: 1, dx: 0, dy: 1},
	{x0: 0, y0: 1, dx: 1, dy: 1},
	{x0: 1, y0: 1, dx: 0, dy: 1, square: true},
	{x0: 2, y0: 1, dx: -1, dy: 1},
	{x0: 2, y0: 1, dx: 0, dy: 1},

	{x0: 0, y0: 1, dx: 1, dy: 0},
	{x0: 1, y0: 1, dx: 1, dy: 0},

	{x0: 0, y0: 0, dx: 0, dy: 1},
	{x0: 0, y0: 1, dx: 1, dy: -1},
	{x0: 1, y0: 1, dx: 0, dy: -1, square: true},
	{x0: 2, y0: 1, dx: -1, dy: -1},
	{x0: 2, y0: 0, dx: 0, dy: 1},

	{x0: 0, y0: 0, dx: 2, dy: 0},
}

// 7 segments:
//
//	 --A--
//	|B   C|
//	  -D-
//	|E   F|
//	 --G--
var defs7 = []def{
	{x0: 0, y0: 2, dx: 2, dy: 0},

	{x0: 0, y0: 1, dx: 0, dy: 1},
	{x0: 2, y0: 1, dx: 0, dy: 1},

	{x0: 0, y0: 1, dx: 2, dy: 0},

	{x0: 0, y0: 0, dx: 0, dy: 1},
	{x0: 2, y0: 0, dx: 0, dy: 1},

	{x0: 0, y0: 0, dx: 2, dy: 0},
}

type glyph struct {
	ch   rune
	segs string
}

// Based on Maxim application note 3212, with modifications.
var font16 = []glyph{
	{'A', "ABCGHIJN"},
	{'B', "ABEGILNOP"},
	{'C', "ABCJOP"},
	{'D', "ABEGLNOP"},
	{'E', "ABCHIJOP"},
	{'F', "ABCHIJ"},
	{'G', "ABCIJNOP"},
	{'H', "CGHIJN"},
	{'I', "ABELOP"},
	{'J', "GJNOP"},
	{'K', "CFHJM"},
	{'L', "CJOP"},
	{'M', "CDFGJN"},
	{'N', "CDGJMN"},
	{'O', "ABCGJNOP"},
	{'P', "ABCGHIJ"},
	{'Q', "ABCGJMNOP"},
	{'R', "ABCGHIJM"},
	{'S', "ABCHINOP"},
	{'T', "ABEL"},
	{'U', "CGJNOP"},
	{'V', "CFJK"},
	{'W', "CGJKMN"},
	{'X', "DFKM"},
	{'Y', "DFL"},
	{'Z', "ABFKOP"},
	{'*', "DEFHIKLM"},
	{'-', "HI"},
	{'+', "EHIL"},
	{'0', "ABCGJNOP"},
	{'1', "GN"},
	{'2', "ABGHIJOP"},
	{'3', "ABGHINOP"},
	{'4', "CGHIN"},
	{'5', "ABCHINOP"},
	{'6', "ABCHIJNOP"},
	{'7', "ABGN"},
	{'8', "ABCGHIJNOP"},
	{'9', "ABCGHINOP"},
}

var font14 = []glyph{
	{'A', "ABFGHIM"},
	{'B', "ADFHKMN"},
	{'C', "ABIN"},
	{'D', "ADFKMN"},
	{'E', "ABGHIN"},
	{'F', "ABGHI"},
	{'G', "ABHIMN"},
	{'H', "BFGHIM"},
	{'I', "ADKN"},
	{'J', "FIMN"},
	{'K', "BEGIL"},
	{'L', "BIN"},
	{'M', "BCEFIM"},
	{'N', "BCFILM"},
	{'O', "ABFIMN"},
	{'P', "ABFGHI"},
	{'Q', "ABFILMN"},
	{'R', "ABFGHIL"},
	{'S', "ABGHMN"},
	{'T', "ADK"},
	{'U', "BFIMN"},
	{'V', "BEIJ"},
	{'W', "BFIJLM"},
	{'X', "CEJL"},
	{'Y', "CEK"},
	{'Z', "AEJN"},
	{'*', "CDEGHJKL"},
	{'-', "GH"},
	{'+', "DGHK"},
	{'0', "ABFIMN"},
	{'1', "FM"},
	{'2', "AFGHIN"},
	{'3', "AFGHMN"},
	{'4', "BFGHM"},
	{'5', "ABGHMN"},
	{'6', "ABGHIMN"},
	{'7', "AFM"},
	{'8', "ABFGHIMN"},
	{'9', "ABFGHMN"},
}

// The 7 segment table covers upper and lower case, approximated where
// a letter cannot be shown.
var font7 = []glyph{
	{' ', ""},
	{'"', "CB"},
	{'-', "D"},
	{'0', "ACFGEB"},
	{'1', "CF"},
	{'2', "ACGED"},
	{'3', "ACFGD"},
	{'4', "CFBD"},
	{'5', "AFGBD"},
	{'6', "AFGEBD"},
	{'7', "ACF"},
	{'8', "ACFGEBD"},
	{'9', "ACFGBD"},
	{'=', "GD"},
	{'A', "ACFEBD"},
	{'B', "ACFGEBD"},
	{'C', "AGEB"},
	{'D', "ACFGE"},
	{'E', "AGEBD"},
	{'F', "AEBD"},
	{'G', "AFGEB"},
	{'H', "CFEBD"},
	{'I', "CF"},
	{'J', "CFGE"},
	{'K', "CGEBD"},
	{'L', "GEB"},
	{'M', "AFE"},
	{'N', "ACFEB"},
	{'O', "ACFGEB"},
	{'P', "ACEBD"},
	{'Q', "ACGBD"},
	{'R', "ACEB"},
	{'S', "AFGBD"},
	{'T', "ACF"},
	{'U', "CFGEB"},
	{'V', "CEBD"},
	{'W', "CGB"},
	{'X', "FBD"},
	{'Y', "CFGBD"},
	{'Z', "ACGED"},
	{'[', "AGEB"},
	{']', "ACFG"},
	{'^', "ACB"},
	{'_', "G"},
	{'a', "ACFGED"},
	{'b', "FGEBD"},
	{'c', "GED"},
	{'d', "CFGED"},
	{'e', "ACGEBD"},
	{'f', "AEBD"},
	{'g', "ACFGBD"},
	{'h', "FEBD"},
	{'i', "E"},
	{'j', "CFG"},
	{'k', "AFEBD"},
	{'l', "EB"},
	{'m', "FE"},
	{'n', "FED"},
	{'o', "FGED"},
	{'p', "ACEBD"},
	{'q', "ACFBD"},
	{'r', "ED"},
	{'s', "AFGBD"},
	{'t', "GEBD"},
	{'u', "FGE"},
	{'v', "CBD"},
	{'w', "CB"},
	{'x', "CED"},
	{'y', "CFGBD"},
	{'z', "ACGED"},
}
