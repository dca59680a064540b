package escape

// textTable maps orthographic and translation text to LaTeX. The two
// italic span markers open and close a \textit group.
var textTable = map[rune]string{
	0x000A: ` `,                             // LINE FEED
	0x0020: ` `,                             // SPACE
	0x0021: `!`,                             // EXCLAMATION MARK
	0x0022: `"`,                             // QUOTATION MARK
	0x0023: `\#`,                            // NUMBER SIGN
	0x0024: `\$`,                            // DOLLAR SIGN
	0x0025: `\%`,                            // PERCENT SIGN
	0x0026: `\&`,                            // AMPERSAND
	0x0027: `'`,                             // APOSTROPHE
	0x0028: `(`,                             // LEFT PARENTHESIS
	0x0029: `)`,                             // RIGHT PARENTHESIS
	0x002A: `*`,                             // ASTERISK
	0x002B: `+`,                             // PLUS SIGN
	0x002C: `,`,                             // COMMA
	0x002D: `-`,                             // HYPHEN-MINUS
	0x002E: `.`,                             // FULL STOP
	0x002F: `/`,                             // SOLIDUS
	0x0030: `0`,                             // DIGIT ZERO
	0x0031: `1`,                             // DIGIT ONE
	0x0032: `2`,                             // DIGIT TWO
	0x0033: `3`,                             // DIGIT THREE
	0x0034: `4`,                             // DIGIT FOUR
	0x0035: `5`,                             // DIGIT FIVE
	0x0036: `6`,                             // DIGIT SIX
	0x0037: `7`,                             // DIGIT SEVEN
	0x0038: `8`,                             // DIGIT EIGHT
	0x0039: `9`,                             // DIGIT NINE
	0x003A: `:`,                             // COLON
	0x003B: `;`,                             // SEMICOLON
	0x003C: `$<$`,                           // LESS-THAN SIGN
	0x003D: `$=$`,                           // EQUALS SIGN
	0x003E: `$>$`,                           // GREATER-THAN SIGN
	0x003F: `?`,                             // QUESTION MARK
	0x0040: `@`,                             // COMMERCIAL AT
	0x0041: `A`,                             // LATIN CAPITAL LETTER A
	0x0042: `B`,                             // LATIN CAPITAL LETTER B
	0x0043: `C`,                             // LATIN CAPITAL LETTER C
	0x0044: `D`,                             // LATIN CAPITAL LETTER D
	0x0045: `E`,                             // LATIN CAPITAL LETTER E
	0x0046: `F`,                             // LATIN CAPITAL LETTER F
	0x0047: `G`,                             // LATIN CAPITAL LETTER G
	0x0048: `H`,                             // LATIN CAPITAL LETTER H
	0x0049: `I`,                             // LATIN CAPITAL LETTER I
	0x004A: `J`,                             // LATIN CAPITAL LETTER J
	0x004B: `K`,                             // LATIN CAPITAL LETTER K
	0x004C: `L`,                             // LATIN CAPITAL LETTER L
	0x004D: `M`,                             // LATIN CAPITAL LETTER M
	0x004E: `N`,                             // LATIN CAPITAL LETTER N
	0x004F: `O`,                             // LATIN CAPITAL LETTER O
	0x0050: `P`,                             // LATIN CAPITAL LETTER P
	0x0051: `Q`,                             // LATIN CAPITAL LETTER Q
	0x0052: `R`,                             // LATIN CAPITAL LETTER R
	0x0053: `S`,                             // LATIN CAPITAL LETTER S
	0x0054: `T`,                             // LATIN CAPITAL LETTER T
	0x0055: `U`,                             // LATIN CAPITAL LETTER U
	0x0056: `V`,                             // LATIN CAPITAL LETTER V
	0x0057: `W`,                             // LATIN CAPITAL LETTER W
	0x0058: `X`,                             // LATIN CAPITAL LETTER X
	0x0059: `Y`,                             // LATIN CAPITAL LETTER Y
	0x005A: `Z`,                             // LATIN CAPITAL LETTER Z
	0x005B: `[`,                             // LEFT SQUARE BRACKET
	0x005C: `\textbackslash{}`,              // REVERSE SOLIDUS
	0x005D: `]`,                             // RIGHT SQUARE BRACKET
	0x005E: `\^{}`,                          // CIRCUMFLEX ACCENT
	0x005F: `\_`,                            // LOW LINE
	0x0060: "`",                             // GRAVE ACCENT
	0x0061: `a`,                             // LATIN SMALL LETTER A
	0x0062: `b`,                             // LATIN SMALL LETTER B
	0x0063: `c`,                             // LATIN SMALL LETTER C
	0x0064: `d`,                             // LATIN SMALL LETTER D
	0x0065: `e`,                             // LATIN SMALL LETTER E
	0x0066: `f`,                             // LATIN SMALL LETTER F
	0x0067: `g`,                             // LATIN SMALL LETTER G
	0x0068: `h`,                             // LATIN SMALL LETTER H
	0x0069: `i`,                             // LATIN SMALL LETTER I
	0x006A: `j`,                             // LATIN SMALL LETTER J
	0x006B: `k`,                             // LATIN SMALL LETTER K
	0x006C: `l`,                             // LATIN SMALL LETTER L
	0x006D: `m`,                             // LATIN SMALL LETTER M
	0x006E: `n`,                             // LATIN SMALL LETTER N
	0x006F: `o`,                             // LATIN SMALL LETTER O
	0x0070: `p`,                             // LATIN SMALL LETTER P
	0x0071: `q`,                             // LATIN SMALL LETTER Q
	0x0072: `r`,                             // LATIN SMALL LETTER R
	0x0073: `s`,                             // LATIN SMALL LETTER S
	0x0074: `t`,                             // LATIN SMALL LETTER T
	0x0075: `u`,                             // LATIN SMALL LETTER U
	0x0076: `v`,                             // LATIN SMALL LETTER V
	0x0077: `w`,                             // LATIN SMALL LETTER W
	0x0078: `x`,                             // LATIN SMALL LETTER X
	0x0079: `y`,                             // LATIN SMALL LETTER Y
	0x007A: `z`,                             // LATIN SMALL LETTER Z
	0x007B: `\{`,                            // LEFT CURLY BRACKET
	0x007C: `$|$`,                           // VERTICAL LINE
	0x007D: `\}`,                            // RIGHT CURLY BRACKET
	0x007E: `\~{}`,                          // TILDE
	0x00A0: `~`,                             // NO-BREAK SPACE
	0x00AB: `\guillemotleft{}`,              // LEFT-POINTING DOUBLE ANGLE QUOTATION MARK
	0x00B0: `$^{\circ}$`,                    // DEGREE SIGN
	0x00BB: `\guillemotright{}`,             // RIGHT-POINTING DOUBLE ANGLE QUOTATION MARK
	0x00C0: "\\`{A}",                        // LATIN CAPITAL LETTER A WITH GRAVE
	0x00C1: `\'{A}`,                         // LATIN CAPITAL LETTER A WITH ACUTE
	0x00C2: `\^{A}`,                         // LATIN CAPITAL LETTER A WITH CIRCUMFLEX
	0x00C4: `\"{A}`,                         // LATIN CAPITAL LETTER A WITH DIAERESIS
	0x00C7: `\c{C}`,                         // LATIN CAPITAL LETTER C WITH CEDILLA
	0x00C8: "\\`{E}",                        // LATIN CAPITAL LETTER E WITH GRAVE
	0x00C9: `\'{E}`,                         // LATIN CAPITAL LETTER E WITH ACUTE
	0x00CA: `\^{E}`,                         // LATIN CAPITAL LETTER E WITH CIRCUMFLEX
	0x00CB: `\"{E}`,                         // LATIN CAPITAL LETTER E WITH DIAERESIS
	0x00CE: `\^{I}`,                         // LATIN CAPITAL LETTER I WITH CIRCUMFLEX
	0x00CF: `\"{I}`,                         // LATIN CAPITAL LETTER I WITH DIAERESIS
	0x00D4: `\^{O}`,                         // LATIN CAPITAL LETTER O WITH CIRCUMFLEX
	0x00D6: `\"{O}`,                         // LATIN CAPITAL LETTER O WITH DIAERESIS
	0x00DB: `\^{U}`,                         // LATIN CAPITAL LETTER U WITH CIRCUMFLEX
	0x00DC: `\"{U}`,                         // LATIN CAPITAL LETTER U WITH DIAERESIS
	0x00E0: "\\`{a}",                        // LATIN SMALL LETTER A WITH GRAVE
	0x00E1: `\'{a}`,                         // LATIN SMALL LETTER A WITH ACUTE
	0x00E2: `\^{a}`,                         // LATIN SMALL LETTER A WITH CIRCUMFLEX
	0x00E4: `\"{a}`,                         // LATIN SMALL LETTER A WITH DIAERESIS
	0x00E6: `\ae{}`,                         // LATIN SMALL LETTER AE
	0x00E7: `\c{c}`,                         // LATIN SMALL LETTER C WITH CEDILLA
	0x00E8: "\\`{e}",                        // LATIN SMALL LETTER E WITH GRAVE
	0x00E9: `\'{e}`,                         // LATIN SMALL LETTER E WITH ACUTE
	0x00EA: `\^{e}`,                         // LATIN SMALL LETTER E WITH CIRCUMFLEX
	0x00EB: `\"{e}`,                         // LATIN SMALL LETTER E WITH DIAERESIS
	0x00EC: "\\`{\\i}",                      // LATIN SMALL LETTER I WITH GRAVE
	0x00ED: `\'{\i}`,                        // LATIN SMALL LETTER I WITH ACUTE
	0x00EE: `\^{\i}`,                        // LATIN SMALL LETTER I WITH CIRCUMFLEX
	0x00EF: `\"{\i}`,                        // LATIN SMALL LETTER I WITH DIAERESIS
	0x00F1: `\~{n}`,                         // LATIN SMALL LETTER N WITH TILDE
	0x00F2: "\\`{o}",                        // LATIN SMALL LETTER O WITH GRAVE
	0x00F3: `\'{o}`,                         // LATIN SMALL LETTER O WITH ACUTE
	0x00F4: `\^{o}`,                         // LATIN SMALL LETTER O WITH CIRCUMFLEX
	0x00F5: `\~{o}`,                         // LATIN SMALL LETTER O WITH TILDE
	0x00F6: `\"{o}`,                         // LATIN SMALL LETTER O WITH DIAERESIS
	0x00F9: "\\`{u}",                        // LATIN SMALL LETTER U WITH GRAVE
	0x00FA: `\'{u}`,                         // LATIN SMALL LETTER U WITH ACUTE
	0x00FB: `\^{u}`,                         // LATIN SMALL LETTER U WITH CIRCUMFLEX
	0x00FC: `\"{u}`,                         // LATIN SMALL LETTER U WITH DIAERESIS
	0x00FD: `\'{y}`,                         // LATIN SMALL LETTER Y WITH ACUTE
	0x00FF: `\"{y}`,                         // LATIN SMALL LETTER Y WITH DIAERESIS
	0x0100: `\={A}`,                         // LATIN CAPITAL LETTER A WITH MACRON
	0x0101: `\={a}`,                         // LATIN SMALL LETTER A WITH MACRON
	0x0113: `\={e}`,                         // LATIN SMALL LETTER E WITH MACRON
	0x012A: `\={I}`,                         // LATIN CAPITAL LETTER I WITH MACRON
	0x012B: `\={\i}`,                        // LATIN SMALL LETTER I WITH MACRON
	0x014A: `\NG{}`,                         // LATIN CAPITAL LETTER ENG
	0x014B: `\ng{}`,                         // LATIN SMALL LETTER ENG
	0x014C: `\={O}`,                         // LATIN CAPITAL LETTER O WITH MACRON
	0x014D: `\={o}`,                         // LATIN SMALL LETTER O WITH MACRON
	0x016A: `\={U}`,                         // LATIN CAPITAL LETTER U WITH MACRON
	0x016B: `\={u}`,                         // LATIN SMALL LETTER U WITH MACRON
	0x01C0: `\textipa{\textvertline}`,       // LATIN LETTER DENTAL CLICK
	0x01C1: `\textipa{\textdoublevertline}`, // LATIN LETTER LATERAL CLICK
	0x01C2: `\textipa{\textdoublebarpipe}`,  // LATIN LETTER ALVEOLAR CLICK
	0x01C3: `!`,                             // LATIN LETTER RETROFLEX CLICK
	0x0251: `\textipa{A}`,                   // LATIN SMALL LETTER ALPHA
	0x025F: `\textipa{\textbardotlessj{}}`,  // LATIN SMALL LETTER DOTLESS J WITH STROKE
	0x0294: `\textipa{P}`,                   // LATIN LETTER GLOTTAL STOP
	0x0298: `\textipa{\!o}`,                 // LATIN LETTER BILABIAL CLICK
	0x02B0: `\super{h}`,                     // MODIFIER LETTER SMALL H
	0x02B2: `$^{j}$`,                        // MODIFIER LETTER SMALL J
	0x02BC: `'`,                             // MODIFIER LETTER APOSTROPHE
	0x0300: "\\`{",                          // COMBINING GRAVE ACCENT
	0x0301: `\'{`,                           // COMBINING ACUTE ACCENT
	0x0302: `\^{`,                           // COMBINING CIRCUMFLEX ACCENT
	0x0303: `\~{`,                           // COMBINING TILDE
	0x0304: `\={`,                           // COMBINING MACRON
	0x0306: `\u{`,                           // COMBINING BREVE
	0x0308: `\"{`,                           // COMBINING DIAERESIS
	0x030A: `\r{`,                           // COMBINING RING ABOVE
	0x030C: `\v{`,                           // COMBINING CARON
	0x030F: `\textdoublegrave{`,             // COMBINING DOUBLE GRAVE ACCENT
	0x0325: `\r{`,                           // COMBINING RING BELOW
	0x0327: `\c{`,                           // COMBINING CEDILLA
	0x03C7: `\textipa{X}`,                   // GREEK SMALL LETTER CHI
	0x1D51: `\super{N}`,                     // MODIFIER LETTER SMALL ENG
	0x2013: `--`,                            // EN DASH
	0x2014: `---`,                           // EM DASH
	0x2018: "`",                             // LEFT SINGLE QUOTATION MARK
	0x2019: `'`,                             // RIGHT SINGLE QUOTATION MARK
	0x201C: "``",                            // LEFT DOUBLE QUOTATION MARK
	0x201D: `''`,                            // RIGHT DOUBLE QUOTATION MARK
	0x2026: `\ldots{}`,                      // HORIZONTAL ELLIPSIS
}
