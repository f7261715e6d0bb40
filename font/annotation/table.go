package annotation

// glyphs holds the packed glyphs from ' ' to 0x85, indexed by ch - ' '.
// Beyond DEL the font has a few symbols for panel labels.
var glyphs = [...]uint32{
	0x00000000, // ' '
	0x00E19000, // '!'
	0x3D00E000, // '"'
	0xE1F5C3A0, // '#'
	0x7DBCA81E, // '$'
	0xFDBE4A9C, // '%'
	0x49BEDA00, // '&'
	0x00E00000, // '\''
	0x6B900000, // '('
	0x6C900000, // ')'
	0x5A69783C, // '*'
	0x693C0000, // '+'
	0x1CC00003, // ','
	0x3C000000, // '-'
	0x19000000, // '.'
	0x0F000000, // '/'
	0x5FA8D780, // '0'
	0x5E90A000, // '1'
	0x5FCB8A00, // '2'
	0x5FCB4A80, // '3'
	0x5BC7A000, // '4'
	0x7DBCA800, // '5'
	0x7D8ACB00, // '6'
	0x5FA00000, // '7'
	0x5FA8D3C0, // '8'
	0x5FA5BC00, // '9'
	0x19000004, // ':'
	0x1CC7F003, // ';'
	0x2BF00000, // '<'
	0x5F3C0003, // '='
	0x5C800000, // '>'
	0x1900CFDB, // '?'
	0x28DFCBEC, // '@'
	0x2FD83C00, // 'A'
	0x00FD89CB, // 'B'
	0x7D8A0000, // 'C'
	0x589CED00, // 'D'
	0x7D8A00B0, // 'E'
	0x7D800B00, // 'F'
	0x7D8AC00C, // 'G'
	0x587A3C00, // 'H'
	0x5F286900, // 'I'
	0x5F698000, // 'J'
	0x583F3A00, // 'K'
	0x58A00000, // 'L'
	0x2FD86900, // 'M'
	0x7AD80000, // 'N'
	0x5FA8D000, // 'O'
	0x3CFD8000, // 'P'
	0xAFD8A00A, // 'Q'
	0xDFCB00A0, // 'R'
	0x7DBCA800, // 'S'
	0x5F690000, // 'T'
	0x58AF0000, // 'U'
	0x59F00000, // 'V'
	0x58AF1E00, // 'W'
	0x0F5A0000, // 'X'
	0x5BC7A800, // 'Y'
	0x5F8A0000, // 'Z'
	0x29EF0000, // '['
	0x5A000000, // '\\'
	0x5E980000, // ']'
	0x3EC00000, // '^'
	0xA0000000, // '_'
	0x00D00000, // '`'
	0x5FA8BC01, // 'a'
	0x58ACB000, // 'b'
	0x28BC0000, // 'c'
	0x7A8BC000, // 'd'
	0x28DFCB01, // 'e'
	0x1EF3C000, // 'f'
	0xAFDBC002, // 'g'
	0xD3CA0000, // 'h'
	0x00900004, // 'i'
	0x9E000006, // 'j'
	0xD3A3C000, // 'k'
	0x1E000000, // 'l'
	0xBCA00900, // 'm'
	0xD3EFA001, // 'n'
	0xBCA80000, // 'o'
	0xDFCB8002, // 'p'
	0x2FDBC002, // 'q'
	0xD3EF0001, // 'r'
	0xACBDF001, // 's'
	0x29E3C000, // 't'
	0x589CFA01, // 'u'
	0x39C00000, // 'v'
	0x38AC0090, // 'w'
	0xC3A00000, // 'x'
	0x5BCF4A82, // 'y'
	0x3C8A0000, // 'z'
	0x29EF00B0, // '{'
	0x1E000000, // '|'
	0x9ED00C00, // '}'
	0x3DCF0001, // '~'
	0x1BEC9000, // diamond
	0x4BE1B000, // left arrow
	0x3CE1C000, // right arrow
	0x1EB4E000, // up arrow
	0x69B49000, // down arrow
	0x3CFDB000, // degree
	0x7DBC9800, // alternate 5
}
