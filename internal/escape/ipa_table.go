package escape

// ipaTable maps phonetic text to tipa markup. Combining marks map to an
// opening macro that the escaper closes after the base letter.
var ipaTable = map[rune]string{
	0x0020: ` `,                      // SPACE
	0x0021: `!`,                      // EXCLAMATION MARK
	0x0022: `"`,                      // QUOTATION MARK
	0x0023: `\#`,                     // NUMBER SIGN
	0x0024: `\$`,                     // DOLLAR SIGN
	0x0025: `\%`,                     // PERCENT SIGN
	0x0026: `\&`,                     // AMPERSAND
	0x0027: `'`,                      // APOSTROPHE
	0x0028: `(`,                      // LEFT PARENTHESIS
	0x0029: `)`,                      // RIGHT PARENTHESIS
	0x002A: `*`,                      // ASTERISK
	0x002B: `+`,                      // PLUS SIGN
	0x002C: `,`,                      // COMMA
	0x002D: `-`,                      // HYPHEN-MINUS
	0x002E: `.`,                      // FULL STOP
	0x002F: `/`,                      // SOLIDUS
	0x0030: `0`,                      // DIGIT ZERO
	0x0031: `1`,                      // DIGIT ONE
	0x0032: `2`,                      // DIGIT TWO
	0x0033: `3`,                      // DIGIT THREE
	0x0034: `4`,                      // DIGIT FOUR
	0x0035: `5`,                      // DIGIT FIVE
	0x0036: `6`,                      // DIGIT SIX
	0x0037: `7`,                      // DIGIT SEVEN
	0x0038: `8`,                      // DIGIT EIGHT
	0x0039: `9`,                      // DIGIT NINE
	0x003A: `:`,                      // COLON
	0x003B: `;`,                      // SEMICOLON
	0x003C: `$<$`,                    // LESS-THAN SIGN
	0x003D: `$=$`,                    // EQUALS SIGN
	0x003E: `$>$`,                    // GREATER-THAN SIGN
	0x003F: `?`,                      // QUESTION MARK
	0x0040: `@`,                      // COMMERCIAL AT
	0x0041: `\*{A}`,                  // LATIN CAPITAL LETTER A
	0x0042: `\*{B}`,                  // LATIN CAPITAL LETTER B
	0x0043: `\*{C}`,                  // LATIN CAPITAL LETTER C
	0x0044: `\*{D}`,                  // LATIN CAPITAL LETTER D
	0x0045: `\*{E}`,                  // LATIN CAPITAL LETTER E
	0x0046: `\*{F}`,                  // LATIN CAPITAL LETTER F
	0x0047: `\*{G}`,                  // LATIN CAPITAL LETTER G
	0x0048: `\*{H}`,                  // LATIN CAPITAL LETTER H
	0x0049: `\*{I}`,                  // LATIN CAPITAL LETTER I
	0x004A: `\*{J}`,                  // LATIN CAPITAL LETTER J
	0x004B: `\*{K}`,                  // LATIN CAPITAL LETTER K
	0x004C: `\*{L}`,                  // LATIN CAPITAL LETTER L
	0x004D: `\*{M}`,                  // LATIN CAPITAL LETTER M
	0x004E: `\*{N}`,                  // LATIN CAPITAL LETTER N
	0x004F: `\*{O}`,                  // LATIN CAPITAL LETTER O
	0x0050: `\*{P}`,                  // LATIN CAPITAL LETTER P
	0x0051: `\*{Q}`,                  // LATIN CAPITAL LETTER Q
	0x0052: `\*{R}`,                  // LATIN CAPITAL LETTER R
	0x0053: `\*{S}`,                  // LATIN CAPITAL LETTER S
	0x0054: `\*{T}`,                  // LATIN CAPITAL LETTER T
	0x0055: `\*{U}`,                  // LATIN CAPITAL LETTER U
	0x0056: `\*{V}`,                  // LATIN CAPITAL LETTER V
	0x0057: `\*{W}`,                  // LATIN CAPITAL LETTER W
	0x0058: `\*{X}`,                  // LATIN CAPITAL LETTER X
	0x0059: `\*{Y}`,                  // LATIN CAPITAL LETTER Y
	0x005A: `\*{Z}`,                  // LATIN CAPITAL LETTER Z
	0x005B: `[`,                      // LEFT SQUARE BRACKET
	0x005C: `\textbackslash{}`,       // REVERSE SOLIDUS
	0x005D: `]`,                      // RIGHT SQUARE BRACKET
	0x005E: `\^{}`,                   // CIRCUMFLEX ACCENT
	0x005F: `\_`,                     // LOW LINE
	0x0060: "`",                      // GRAVE ACCENT
	0x0061: `a`,                      // LATIN SMALL LETTER A
	0x0062: `b`,                      // LATIN SMALL LETTER B
	0x0063: `c`,                      // LATIN SMALL LETTER C
	0x0064: `d`,                      // LATIN SMALL LETTER D
	0x0065: `e`,                      // LATIN SMALL LETTER E
	0x0066: `f`,                      // LATIN SMALL LETTER F
	0x0067: `g`,                      // LATIN SMALL LETTER G
	0x0068: `h`,                      // LATIN SMALL LETTER H
	0x0069: `i`,                      // LATIN SMALL LETTER I
	0x006A: `j`,                      // LATIN SMALL LETTER J
	0x006B: `k`,                      // LATIN SMALL LETTER K
	0x006C: `l`,                      // LATIN SMALL LETTER L
	0x006D: `m`,                      // LATIN SMALL LETTER M
	0x006E: `n`,                      // LATIN SMALL LETTER N
	0x006F: `o`,                      // LATIN SMALL LETTER O
	0x0070: `p`,                      // LATIN SMALL LETTER P
	0x0071: `q`,                      // LATIN SMALL LETTER Q
	0x0072: `r`,                      // LATIN SMALL LETTER R
	0x0073: `s`,                      // LATIN SMALL LETTER S
	0x0074: `t`,                      // LATIN SMALL LETTER T
	0x0075: `u`,                      // LATIN SMALL LETTER U
	0x0076: `v`,                      // LATIN SMALL LETTER V
	0x0077: `w`,                      // LATIN SMALL LETTER W
	0x0078: `x`,                      // LATIN SMALL LETTER X
	0x0079: `y`,                      // LATIN SMALL LETTER Y
	0x007A: `z`,                      // LATIN SMALL LETTER Z
	0x007B: `\{`,                     // LEFT CURLY BRACKET
	0x007C: `$|$`,                    // VERTICAL LINE
	0x007D: `\}`,                     // RIGHT CURLY BRACKET
	0x007E: `\~{}`,                   // TILDE
	0x00C2: `\^{A}`,                  // LATIN CAPITAL LETTER A WITH CIRCUMFLEX
	0x00E2: `\^{a}`,                  // LATIN SMALL LETTER A WITH CIRCUMFLEX
	0x00E6: `\ae{}`,                  // LATIN SMALL LETTER AE
	0x00E7: `\c{c}`,                  // LATIN SMALL LETTER C WITH CEDILLA
	0x00E9: `\'{e}`,                  // LATIN SMALL LETTER E WITH ACUTE
	0x00EA: `\^{e}`,                  // LATIN SMALL LETTER E WITH CIRCUMFLEX
	0x00EB: `\"{e}`,                  // LATIN SMALL LETTER E WITH DIAERESIS
	0x00EE: `\^{\i}`,                 // LATIN SMALL LETTER I WITH CIRCUMFLEX
	0x00F0: `D`,                      // LATIN SMALL LETTER ETH
	0x00F2: "\\`{o}",                 // LATIN SMALL LETTER O WITH GRAVE
	0x00F4: `\^{o}`,                  // LATIN SMALL LETTER O WITH CIRCUMFLEX
	0x00F5: `\~{o}`,                  // LATIN SMALL LETTER O WITH TILDE
	0x00F8: `\o{}`,                   // LATIN SMALL LETTER O WITH STROKE
	0x00FB: `\^{u}`,                  // LATIN SMALL LETTER U WITH CIRCUMFLEX
	0x0100: `\={A}`,                  // LATIN CAPITAL LETTER A WITH MACRON
	0x0101: `\={a}`,                  // LATIN SMALL LETTER A WITH MACRON
	0x0113: `\={e}`,                  // LATIN SMALL LETTER E WITH MACRON
	0x012B: `\={\i}`,                 // LATIN SMALL LETTER I WITH MACRON
	0x014B: `N`,                      // LATIN SMALL LETTER ENG
	0x014D: `\={o}`,                  // LATIN SMALL LETTER O WITH MACRON
	0x0153: `\oe{}`,                  // LATIN SMALL LIGATURE OE
	0x016B: `\={u}`,                  // LATIN SMALL LETTER U WITH MACRON
	0x01C0: `\textvertline{}`,        // LATIN LETTER DENTAL CLICK
	0x01C1: `\textdoublevertline{}`,  // LATIN LETTER LATERAL CLICK
	0x01C2: `\textdoublebarpipe{}`,   // LATIN LETTER ALVEOLAR CLICK
	0x01C3: `!`,                      // LATIN LETTER RETROFLEX CLICK
	0x0250: `5`,                      // LATIN SMALL LETTER TURNED A
	0x0251: `A`,                      // LATIN SMALL LETTER ALPHA
	0x0252: `6`,                      // LATIN SMALL LETTER TURNED ALPHA
	0x0253: `\!b`,                    // LATIN SMALL LETTER B WITH HOOK
	0x0254: `O`,                      // LATIN SMALL LETTER OPEN O
	0x0255: `C`,                      // LATIN SMALL LETTER C WITH CURL
	0x0257: `\!d`,                    // LATIN SMALL LETTER D WITH HOOK
	0x0258: `9`,                      // LATIN SMALL LETTER REVERSED E
	0x0259: `@`,                      // LATIN SMALL LETTER SCHWA
	0x025B: `E`,                      // LATIN SMALL LETTER OPEN E
	0x025C: `3`,                      // LATIN SMALL LETTER REVERSED OPEN E
	0x025E: `\textcloserevepsilon{}`, // LATIN SMALL LETTER CLOSED REVERSED OPEN E
	0x025F: `\textbardotlessj{}`,     // LATIN SMALL LETTER DOTLESS J WITH STROKE
	0x0260: `\!g`,                    // LATIN SMALL LETTER G WITH HOOK
	0x0261: `g`,                      // LATIN SMALL LETTER SCRIPT G
	0x0262: `\;G`,                    // LATIN LETTER SMALL CAPITAL G
	0x0263: `G`,                      // LATIN SMALL LETTER GAMMA
	0x0264: `7`,                      // LATIN SMALL LETTER RAMS HORN
	0x0265: `4`,                      // LATIN SMALL LETTER TURNED H
	0x0266: `H`,                      // LATIN SMALL LETTER H WITH HOOK
	0x0267: `\texththeng{}`,          // LATIN SMALL LETTER HENG WITH HOOK
	0x0268: `1`,                      // LATIN SMALL LETTER I WITH STROKE
	0x026A: `I`,                      // LATIN LETTER SMALL CAPITAL I
	0x026B: `\textltilde{}`,          // LATIN SMALL LETTER L WITH MIDDLE TILDE
	0x026C: `\textbeltl{}`,           // LATIN SMALL LETTER L WITH BELT
	0x026D: `\textrtaill{}`,          // LATIN SMALL LETTER L WITH RETROFLEX HOOK
	0x026E: `\textlyoghlig{}`,        // LATIN SMALL LETTER LEZH
	0x026F: `W`,                      // LATIN SMALL LETTER TURNED M
	0x0270: `\textturnmrleg{}`,       // LATIN SMALL LETTER TURNED M WITH LONG LEG
	0x0271: `M`,                      // LATIN SMALL LETTER M WITH HOOK
	0x0272: `\textltailn{}`,          // LATIN SMALL LETTER N WITH LEFT HOOK
	0x0273: `\textrtailn{}`,          // LATIN SMALL LETTER N WITH RETROFLEX HOOK
	0x0274: `\textscn{}`,             // LATIN LETTER SMALL CAPITAL N
	0x0275: `8`,                      // LATIN SMALL LETTER BARRED O
	0x0278: `F`,                      // LATIN SMALL LETTER PHI
	0x0279: `\textturnr{}`,           // LATIN SMALL LETTER TURNED R
	0x027A: `\textturnlonglegr{}`,    // LATIN SMALL LETTER TURNED R WITH LONG LEG
	0x027B: `\textturnrrtail{}`,      // LATIN SMALL LETTER TURNED R WITH HOOK
	0x027D: `\textrtailr{}`,          // LATIN SMALL LETTER R WITH TAIL
	0x027E: `R`,                      // LATIN SMALL LETTER R WITH FISHHOOK
	0x0280: `\textscr{}`,             // LATIN LETTER SMALL CAPITAL R
	0x0281: `K`,                      // LATIN LETTER SMALL CAPITAL INVERTED R
	0x0282: `\textrtails{}`,          // LATIN SMALL LETTER S WITH HOOK
	0x0283: `S`,                      // LATIN SMALL LETTER ESH
	0x0288: `\textrtailt{}`,          // LATIN SMALL LETTER T WITH RETROFLEX HOOK
	0x0289: `0`,                      // LATIN SMALL LETTER U BAR
	0x028A: `U`,                      // LATIN SMALL LETTER UPSILON
	0x028B: `V`,                      // LATIN SMALL LETTER V WITH HOOK
	0x028C: `2`,                      // LATIN SMALL LETTER TURNED V
	0x028D: `\textturnw{}`,           // LATIN SMALL LETTER TURNED W
	0x028E: `L`,                      // LATIN SMALL LETTER TURNED Y
	0x028F: `Y`,                      // LATIN LETTER SMALL CAPITAL Y
	0x0290: `\textrtailz{}`,          // LATIN SMALL LETTER Z WITH RETROFLEX HOOK
	0x0292: `Z`,                      // LATIN SMALL LETTER EZH
	0x0294: `P`,                      // LATIN LETTER GLOTTAL STOP
	0x0295: `Q`,                      // LATIN LETTER PHARYNGEAL VOICED FRICATIVE
	0x0298: `\!o`,                    // LATIN LETTER BILABIAL CLICK
	0x0299: `\textscb{}`,             // LATIN LETTER SMALL CAPITAL B
	0x029B: `!G`,                     // LATIN LETTER SMALL CAPITAL G WITH HOOK
	0x029C: `\textsch{}`,             // LATIN LETTER SMALL CAPITAL H
	0x029D: `\textctj{}`,             // LATIN SMALL LETTER J WITH CROSSED-TAIL
	0x029E: `\textturnk{}`,           // LATIN SMALL LETTER TURNED K
	0x029F: `\;L`,                    // LATIN LETTER SMALL CAPITAL L
	0x02A2: `\textbarrevglotstop{}`,  // LATIN LETTER REVERSED GLOTTAL STOP WITH STROKE
	0x02B0: `\super{h}`,              // MODIFIER LETTER SMALL H
	0x02B1: `\super{H}`,              // MODIFIER LETTER SMALL H WITH HOOK
	0x02B2: `\super{j}`,              // MODIFIER LETTER SMALL J
	0x02B7: `\super{w}`,              // MODIFIER LETTER SMALL W
	0x02BC: `'`,                      // MODIFIER LETTER APOSTROPHE
	0x02C0: `\textraiseglotstop{}`,   // MODIFIER LETTER GLOTTAL STOP
	0x02C8: `"`,                      // MODIFIER LETTER VERTICAL LINE
	0x02CC: `\textsecstress{}`,       // MODIFIER LETTER LOW VERTICAL LINE
	0x02D0: `:`,                      // MODIFIER LETTER TRIANGULAR COLON
	0x02D1: `;`,                      // MODIFIER LETTER HALF TRIANGULAR COLON
	0x02DE: `\textrhoticity{}`,       // MODIFIER LETTER RHOTIC HOOK
	0x02E0: `\super{G}`,              // MODIFIER LETTER SMALL GAMMA
	0x02E1: `\super{l}`,              // MODIFIER LETTER SMALL L
	0x02E4: `\super{Q}`,              // MODIFIER LETTER SMALL REVERSED GLOTTAL STOP
	0x0300: "\\`{",                   // COMBINING GRAVE ACCENT
	0x0301: `\'{`,                    // COMBINING ACUTE ACCENT
	0x0302: `\^{`,                    // COMBINING CIRCUMFLEX ACCENT
	0x0303: `\~{`,                    // COMBINING TILDE
	0x0304: `\={`,                    // COMBINING MACRON
	0x0306: `\u{`,                    // COMBINING BREVE
	0x0308: `\"{`,                    // COMBINING DIAERESIS
	0x030A: `\r{`,                    // COMBINING RING ABOVE
	0x030C: `\v{`,                    // COMBINING CARON
	0x0311: `\textroundcap{`,         // COMBINING INVERTED BREVE
	0x0318: `\textadvancing{`,        // COMBINING LEFT TACK BELOW
	0x0319: `\textretracting{`,       // COMBINING RIGHT TACK BELOW
	0x031C: `\textsubw{`,             // COMBINING LEFT HALF RING BELOW
	0x031D: `\textraising{`,          // COMBINING UP TACK BELOW
	0x031E: `\textlowering{`,         // COMBINING DOWN TACK BELOW
	0x031F: `\textsubplus{`,          // COMBINING PLUS SIGN BELOW
	0x0320: `\textsubbar{`,           // COMBINING MINUS SIGN BELOW
	0x0324: `\"*{`,                   // COMBINING DIAERESIS BELOW
	0x0325: `\r{`,                    // COMBINING RING BELOW
	0x0329: `\s{`,                    // COMBINING VERTICAL LINE BELOW
	0x032F: `\textsubarch{`,          // COMBINING INVERTED BREVE BELOW
	0x0330: `\textsubtilde{`,         // COMBINING TILDE BELOW
	0x0339: `\textsubrhalfring{`,     // COMBINING RIGHT HALF RING BELOW
	0x033A: `\textsubumlaut{`,        // COMBINING INVERTED BRIDGE BELOW
	0x033B: `\textsubsquare{`,        // COMBINING SQUARE BELOW
	0x033C: `\textseagull{`,          // COMBINING SEAGULL BELOW
	0x035C: `\textbottomtiebar{`,     // COMBINING DOUBLE BREVE BELOW
	0x0361: `\t{`,                    // COMBINING DOUBLE INVERTED BREVE
	0x03B2: `B`,                      // GREEK SMALL LETTER BETA
	0x03B8: `T`,                      // GREEK SMALL LETTER THETA
	0x03C7: `X`,                      // GREEK SMALL LETTER CHI
	0x1D4A: `\super{@}`,              // MODIFIER LETTER SMALL SCHWA
	0x1D4F: `\super{k}`,              // MODIFIER LETTER SMALL K
	0x1D51: `\super{N}`,              // MODIFIER LETTER SMALL ENG
	0x1D61: `\super{X}`,              // MODIFIER LETTER SMALL CHI
	0x1DA0: `\super{f}`,              // MODIFIER LETTER SMALL F
	0x1DA2: `\super{g}`,              // MODIFIER LETTER SMALL SCRIPT G
	0x1E73: `\"*{u}`,                 // LATIN SMALL LETTER U WITH DIAERESIS BELOW
	0x2019: `'`,                      // RIGHT SINGLE QUOTATION MARK
	0x2026: `\ldots{}`,               // HORIZONTAL ELLIPSIS
	0x2071: `\super{i}`,              // SUPERSCRIPT LATIN SMALL LETTER I
	0x207F: `\super{n}`,              // SUPERSCRIPT LATIN SMALL LETTER N
}
