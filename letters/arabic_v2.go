package letters

var arabicV2Letters = []Letter{
	l(0x0621, 0xFE80, 0, 0, 0),                // ARABIC LETTER HAMZA
	l(0x0622, 0x0622, 0, 0, 0xFE82),           // ARABIC LETTER ALEF WITH MADDA ABOVE
	l(0x0623, 0x0623, 0, 0, 0xFE84),           // ARABIC LETTER ALEF WITH HAMZA ABOVE
	l(0x0624, 0x0624, 0, 0, 0xFE86),           // ARABIC LETTER WAW WITH HAMZA ABOVE
	l(0x0625, 0x0625, 0, 0, 0xFE88),           // ARABIC LETTER ALEF WITH HAMZA BELOW
	l(0x0626, 0x0626, 0xFE8B, 0xFE8C, 0xFE8A), // ARABIC LETTER YEH WITH HAMZA ABOVE
	l(0x0627, 0x0627, 0, 0, 0xFE8E),           // ARABIC LETTER ALEF
	l(0x0628, 0x0628, 0xFE91, 0xFE92, 0xFE90), // ARABIC LETTER BEH
	l(0x0629, 0x0629, 0, 0, 0xFE94),           // ARABIC LETTER TEH MARBUTA
	l(0x062A, 0x062A, 0xFE97, 0xFE98, 0xFE96), // ARABIC LETTER TEH
	l(0x062B, 0x062B, 0xFE9B, 0xFE9C, 0xFE9A), // ARABIC LETTER THEH
	l(0x062C, 0x062C, 0xFE9F, 0xFEA0, 0xFE9E), // ARABIC LETTER JEEM
	l(0x062D, 0xFEA1, 0xFEA3, 0xFEA4, 0xFEA2), // ARABIC LETTER HAH
	l(0x062E, 0x062E, 0xFEA7, 0xFEA8, 0xFEA6), // ARABIC LETTER KHAH
	l(0x062F, 0x062F, 0, 0, 0xFEAA),           // ARABIC LETTER DAL
	l(0x0630, 0x0630, 0, 0, 0xFEAC),           // ARABIC LETTER THAL
	l(0x0631, 0x0631, 0, 0, 0xFEAE),           // ARABIC LETTER REH
	l(0x0632, 0x0632, 0, 0, 0xFEB0),           // ARABIC LETTER ZAIN
	l(0x0633, 0x0633, 0xFEB3, 0xFEB4, 0xFEB2), // ARABIC LETTER SEEN
	l(0x0634, 0x0634, 0xFEB7, 0xFEB8, 0xFEB6), // ARABIC LETTER SHEEN
	l(0x0635, 0x0635, 0xFEBB, 0xFEBC, 0xFEBA), // ARABIC LETTER SAD
	l(0x0636, 0x0636, 0xFEBF, 0xFEC0, 0xFEBE), // ARABIC LETTER DAD
	l(0x0637, 0x0637, 0xFEC3, 0xFEC4, 0xFEC2), // ARABIC LETTER TAH
	l(0x0638, 0x0638, 0xFEC7, 0xFEC8, 0xFEC6), // ARABIC LETTER ZAH
	l(0x0639, 0x0639, 0xFECB, 0xFECC, 0xFECA), // ARABIC LETTER AIN
	l(0x063A, 0x063A, 0xFECF, 0xFED0, 0xFECE), // ARABIC LETTER GHAIN
	l(0x0640, 0x0640, 0x0640, 0x0640, 0x0640), // ARABIC TATWEEL
	l(0x0641, 0x0641, 0xFED3, 0xFED4, 0xFED2), // ARABIC LETTER FEH
	l(0x0642, 0x0642, 0xFED7, 0xFED8, 0xFED6), // ARABIC LETTER QAF
	l(0x0643, 0x0643, 0xFEDB, 0xFEDC, 0xFEDA), // ARABIC LETTER KAF
	l(0x0644, 0x0644, 0xFEDF, 0xFEE0, 0xFEDE), // ARABIC LETTER LAM
	l(0x0645, 0x0645, 0xFEE3, 0xFEE4, 0xFEE2), // ARABIC LETTER MEEM
	l(0x0646, 0x0646, 0xFEE7, 0xFEE8, 0xFEE6), // ARABIC LETTER NOON
	l(0x0647, 0x0647, 0xFEEB, 0xFEEC, 0xFEEA), // ARABIC LETTER HEH
	l(0x0648, 0x0648, 0, 0, 0xFEEE),           // ARABIC LETTER WAW
	l(0x0649, 0x0649, 0xFBE8, 0xFBE9, 0xFEF0), // ARABIC LETTER (UIGHUR KAZAKH KIRGHIZ)? ALEF MAKSURA
	l(0x064A, 0x064A, 0xFEF3, 0xFEF4, 0xFEF2), // ARABIC LETTER YEH
	l(0x0671, 0x0671, 0, 0, 0xFB51),           // ARABIC LETTER ALEF WASLA
	l(0x0677, 0x0677, 0, 0, 0),                // ARABIC LETTER U WITH HAMZA ABOVE
	l(0x0679, 0x0679, 0xFB68, 0xFB69, 0xFB67), // ARABIC LETTER TTEH
	l(0x067A, 0x067A, 0xFB60, 0xFB61, 0xFB5F), // ARABIC LETTER TTEHEH
	l(0x067B, 0x067B, 0xFB54, 0xFB55, 0xFB53), // ARABIC LETTER BEEH
	l(0x067E, 0x067E, 0xFB58, 0xFB59, 0xFB57), // ARABIC LETTER PEH
	l(0x067F, 0x067F, 0xFB64, 0xFB65, 0xFB63), // ARABIC LETTER TEHEH
	l(0x0680, 0x0680, 0xFB5C, 0xFB5D, 0xFB5B), // ARABIC LETTER BEHEH
	l(0x0683, 0x0683, 0xFB78, 0xFB79, 0xFB77), // ARABIC LETTER NYEH
	l(0x0684, 0x0684, 0xFB74, 0xFB75, 0xFB73), // ARABIC LETTER DYEH
	l(0x0686, 0x0686, 0xFB7C, 0xFB7D, 0xFB7B), // ARABIC LETTER TCHEH
	l(0x0687, 0x0687, 0xFB80, 0xFB81, 0xFB7F), // ARABIC LETTER TCHEHEH
	l(0x0688, 0x0688, 0, 0, 0xFB89),           // ARABIC LETTER DDAL
	l(0x068C, 0x068C, 0, 0, 0xFB85),           // ARABIC LETTER DAHAL
	l(0x068D, 0x068D, 0, 0, 0xFB83),           // ARABIC LETTER DDAHAL
	l(0x068E, 0x068E, 0, 0, 0xFB87),           // ARABIC LETTER DUL
	l(0x0691, 0x0691, 0, 0, 0xFB8D),           // ARABIC LETTER RREH
	l(0x0698, 0x0698, 0, 0, 0xFB8B),           // ARABIC LETTER JEH
	l(0x06A4, 0x06A4, 0xFB6C, 0xFB6D, 0xFB6B), // ARABIC LETTER VEH
	l(0x06A6, 0x06A6, 0xFB70, 0xFB71, 0xFB6F), // ARABIC LETTER PEHEH
	l(0x06A9, 0x06A9, 0xFB90, 0xFB91, 0xFB8F), // ARABIC LETTER KEHEH
	l(0x06AD, 0x06AD, 0xFBD5, 0xFBD6, 0xFBD4), // ARABIC LETTER NG
	l(0x06AF, 0x06AF, 0xFB94, 0xFB95, 0xFB93), // ARABIC LETTER GAF
	l(0x06B1, 0x06B1, 0xFB9C, 0xFB9D, 0xFB9B), // ARABIC LETTER NGOEH
	l(0x06B3, 0x06B3, 0xFB98, 0xFB99, 0xFB97), // ARABIC LETTER GUEH
	l(0x06BA, 0x06BA, 0, 0, 0xFB9F),           // ARABIC LETTER NOON GHUNNA
	l(0x06BB, 0x06BB, 0xFBA2, 0xFBA3, 0xFBA1), // ARABIC LETTER RNOON
	l(0x06BE, 0x06BE, 0xFBAC, 0xFBAD, 0xFBAB), // ARABIC LETTER HEH DOACHASHMEE
	l(0x06C0, 0x06C0, 0, 0, 0xFBA5),           // ARABIC LETTER HEH WITH YEH ABOVE
	l(0x06C1, 0x06C1, 0xFBA8, 0xFBA9, 0xFBA7), // ARABIC LETTER HEH GOAL
	l(0x06C5, 0x06C5, 0, 0, 0xFBE1),           // ARABIC LETTER KIRGHIZ OE
	l(0x06C6, 0x06C6, 0, 0, 0xFBDA),           // ARABIC LETTER OE
	l(0x06C7, 0x06C7, 0, 0, 0xFBD8),           // ARABIC LETTER U
	l(0x06C8, 0x06C8, 0, 0, 0xFBDC),           // ARABIC LETTER YU
	l(0x06C9, 0x06C9, 0, 0, 0xFBE3),           // ARABIC LETTER KIRGHIZ YU
	l(0x06CB, 0x06CB, 0, 0, 0xFBDF),           // ARABIC LETTER VE
	l(0x06CC, 0x06CC, 0xFBFE, 0xFBFF, 0xFBFD), // ARABIC LETTER FARSI YEH
	l(0x06D0, 0x06D0, 0xFBE6, 0xFBE7, 0xFBE5), // ARABIC LETTER E
	l(0x06D2, 0x06D2, 0, 0, 0xFBAF),           // ARABIC LETTER YEH BARREE
	l(0x06D3, 0x06D3, 0, 0, 0xFBB1),           // ARABIC LETTER YEH BARREE WITH HAMZA ABOVE
	l(0x06CE, 0xE004, 0xE005, 0xE006, 0xE004), // Kurdish letter YEAH
	l(0x06D5, 0x06D5, 0, 0, 0xE000),           // Kurdish letter Hamza same as arabic Teh without the point
	l(0x200D, 0x200D, 0x200D, 0x200D, 0x200D), // ZWJ
}
