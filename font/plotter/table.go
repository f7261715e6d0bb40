package plotter

// strokes holds the glyphs from ' ' to 0x89, indexed by ch - ' '.
// The printable ASCII range follows the Commodore 1520 plotter ROM,
// with the characters the plotter lacked drawn in the same style.
var strokes = [...][]Cmd{
	{0300}, // ' '
	{0127, 0023, 0122, 0221}, // '!'
	{0117, 0016, 0137, 0236}, // '"'
	{0112, 0016, 0136, 0032, 0143, 0003, 0105, 0245}, // '#'
	{0003, 0012, 0032, 0043, 0034, 0014, 0005, 0016, 0036, 0045, 0121, 0027}, // '$'
	{0102, 0046, 0116, 0006, 0005, 0015, 0016, 0133, 0043, 0042, 0032, 0233}, // '%'
	{0141, 0005, 0006, 0017, 0026, 0025, 0003, 0002, 0011, 0021, 0243}, // '&'
	{0125, 0227}, // '\''
	{0131, 0021, 0012, 0016, 0027, 0237}, // '('
	{0121, 0031, 0042, 0046, 0037, 0227}, // ')'
	{0102, 0046, 0106, 0042, 0126, 0222}, // '*'
	{0122, 0026, 0104, 0244}, // '+'
	{0120, 0031, 0032, 0022, 0021, 0231}, // ','
	{0104, 0244}, // '-'
	{0121, 0022, 0032, 0031, 0221}, // '.'
	{0101, 0256}, // '/'
	{0102, 0046, 0037, 0017, 0006, 0002, 0011, 0031, 0042, 0246}, // '0'
	{0116, 0027, 0021, 0111, 0231}, // '1'
	{0106, 0017, 0037, 0046, 0045, 0001, 0241}, // '2'
	{0106, 0017, 0037, 0046, 0045, 0034, 0024, 0134, 0043, 0042, 0031, 0011, 0202}, // '3'
	{0131, 0037, 0004, 0003, 0243}, // '4'
	{0102, 0011, 0031, 0042, 0044, 0035, 0005, 0007, 0247}, // '5'
	{0104, 0015, 0035, 0044, 0042, 0031, 0011, 0002, 0006, 0017, 0037, 0246}, // '6'
	{0101, 0045, 0047, 0207}, // '7'
	{0114, 0005, 0006, 0017, 0037, 0046, 0045, 0034, 0043, 0042, 0031, 0011, 0002, 0003, 0014, 0234}, // '8'
	{0102, 0011, 0031, 0042, 0046, 0037, 0017, 0006, 0005, 0014, 0034, 0245}, // '9'
	{0112, 0013, 0023, 0022, 0012, 0115, 0016, 0026, 0025, 0215}, // ':'
	{0111, 0022, 0023, 0013, 0012, 0022, 0125, 0026, 0016, 0015, 0225}, // ';'
	{0141, 0014, 0247}, // '<'
	{0103, 0043, 0105, 0245}, // '='
	{0111, 0044, 0217}, // '>'
	{0106, 0017, 0037, 0046, 0045, 0034, 0024, 0023, 0122, 0221}, // '?'
	{0133, 0035, 0015, 0012, 0032, 0043, 0045, 0036, 0016, 0005, 0002, 0011, 0241}, // '@'
	{0101, 0005, 0027, 0045, 0041, 0104, 0244}, // 'A'
	{0101, 0007, 0037, 0046, 0045, 0034, 0104, 0034, 0043, 0042, 0031, 0201}, // 'B'
	{0142, 0031, 0011, 0002, 0006, 0017, 0037, 0246}, // 'C'
	{0101, 0007, 0037, 0046, 0042, 0031, 0201}, // 'D'
	{0141, 0001, 0007, 0047, 0134, 0204}, // 'E'
	{0101, 0007, 0047, 0104, 0234}, // 'F'
	{0146, 0037, 0017, 0006, 0002, 0011, 0041, 0044, 0224}, // 'G'
	{0101, 0007, 0147, 0041, 0104, 0244}, // 'H'
	{0101, 0041, 0121, 0027, 0107, 0247}, // 'I'
	{0102, 0011, 0021, 0032, 0237}, // 'J'
	{0101, 0007, 0147, 0003, 0114, 0241}, // 'K'
	{0107, 0001, 0241}, // 'L'
	{0101, 0007, 0025, 0024, 0025, 0047, 0241}, // 'M'
	{0101, 0007, 0106, 0042, 0147, 0241}, // 'N'
	{0102, 0006, 0017, 0037, 0046, 0042, 0031, 0011, 0202}, // 'O'
	{0101, 0007, 0037, 0046, 0045, 0034, 0204}, // 'P'
	{0123, 0041, 0131, 0011, 0002, 0006, 0017, 0037, 0046, 0042, 0231}, // 'Q'
	{0101, 0007, 0037, 0046, 0045, 0034, 0004, 0114, 0241}, // 'R'
	{0102, 0011, 0031, 0042, 0043, 0034, 0014, 0005, 0006, 0017, 0037, 0246}, // 'S'
	{0121, 0027, 0107, 0247}, // 'T'
	{0107, 0002, 0011, 0031, 0042, 0247}, // 'U'
	{0107, 0003, 0021, 0043, 0247}, // 'V'
	{0107, 0001, 0023, 0124, 0023, 0041, 0247}, // 'W'
	{0101, 0002, 0046, 0047, 0107, 0006, 0042, 0241}, // 'X'
	{0121, 0024, 0046, 0047, 0107, 0006, 0224}, // 'Y'
	{0107, 0047, 0046, 0002, 0001, 0241}, // 'Z'
	{0121, 0001, 0007, 0227}, // '['
	{0006, 0051}, // '\\'
	{0111, 0031, 0037, 0217}, // ']'
	{0015, 0027, 0035}, // '^'
	{0000, 0060}, // '_'
	{0035, 0027}, // '`'
	{0132, 0021, 0011, 0002, 0003, 0014, 0024, 0033, 0105, 0025, 0034, 0032, 0241}, // 'a'
	{0107, 0001, 0021, 0032, 0034, 0025, 0205}, // 'b'
	{0132, 0021, 0011, 0002, 0004, 0015, 0025, 0234}, // 'c'
	{0135, 0015, 0004, 0002, 0011, 0031, 0237}, // 'd'
	{0103, 0033, 0034, 0025, 0015, 0004, 0002, 0011, 0231}, // 'e'
	{0121, 0027, 0037, 0114, 0234}, // 'f'
	{0101, 0010, 0020, 0031, 0034, 0025, 0015, 0004, 0003, 0012, 0022, 0233}, // 'g'
	{0101, 0007, 0105, 0025, 0034, 0231}, // 'h'
	{0111, 0014, 0115, 0216}, // 'i'
	{0101, 0010, 0020, 0031, 0034, 0135, 0236}, // 'j'
	{0131, 0013, 0107, 0001, 0102, 0235}, // 'k'
	{0117, 0011, 0221}, // 'l'
	{0101, 0005, 0104, 0015, 0024, 0021, 0124, 0035, 0044, 0241}, // 'm'
	{0101, 0005, 0004, 0015, 0025, 0034, 0231}, // 'n'
	{0102, 0004, 0015, 0025, 0034, 0032, 0021, 0011, 0202}, // 'o'
	{0102, 0022, 0033, 0034, 0025, 0005, 0200}, // 'p'
	{0140, 0030, 0035, 0015, 0004, 0003, 0012, 0232}, // 'q'
	{0105, 0014, 0011, 0114, 0025, 0235}, // 'r'
	{0102, 0011, 0021, 0032, 0023, 0013, 0004, 0015, 0025, 0234}, // 's'
	{0105, 0025, 0117, 0011, 0221}, // 't'
	{0005, 0002, 0011, 0021, 0032, 0131, 0035}, // 'u'
	{0105, 0003, 0021, 0043, 0245}, // 'v'
	{0105, 0002, 0011, 0022, 0023, 0022, 0031, 0042, 0245}, // 'w'
	{0101, 0045, 0105, 0241}, // 'x'
	{0105, 0004, 0022, 0145, 0044, 0200}, // 'y'
	{0105, 0045, 0001, 0241}, // 'z'
	{0031, 0021, 0012, 0013, 0004, 0015, 0016, 0027, 0037}, // '{'
	{0021, 0027}, // '|'
	{0121, 0031, 0042, 0043, 0054, 0045, 0046, 0037, 0227}, // '}'
	{0016, 0027, 0036, 0047}, // '~'
	{0000}, // DEL
	{0050, 0072, 0074, 0056, 0036, 0014, 0017, 0114, 0044}, // anticlockwise arrow
	{0052, 0041, 0021, 0003, 0005, 0027, 0047, 0056, 0136, 0032, 0114, 0074}, // centre mark
	{0020, 0002, 0004, 0026, 0046, 0064, 0134, 0064, 0067}, // clockwise arrow
	{0156, 0046, 0035, 0032, 0021, 0011, 0002, 0013, 0031, 0051, 0124, 0244}, // pound sign
	{0121, 0026, 0104, 0026, 0244}, // up arrow
	{0122, 0004, 0026, 0104, 0254}, // left arrow
	{0104, 0274}, // horizontal bar
	{0121, 0026, 0103, 0021, 0243}, // down arrow
	{0132, 0054, 0036, 0154, 0204}, // right arrow
	{0122, 0004, 0026, 0142, 0064, 0046, 0164, 0204}, // left-right arrow
}
