package ligatures

// Ligature identifiers. The order is the substitution priority order:
// sentences first, then words, then letter groups.
const (
	BismillahArRahmanArRaheem ID = iota
	Jallajalalouhou
	SallallahouAlayheWasallam
	Allah
	Akbar
	Alayhe
	Mohammad
	Rasoul
	Salam
	Salla
	Wasallam
	RialSign
	AinWithAlefMaksura
	AinWithJeem
	AinWithJeemWithMeem
	AinWithMeem
	AinWithMeemWithAlefMaksura
	AinWithMeemWithMeem
	AinWithMeemWithYeh
	AinWithYeh
	AlefMaksuraWithSuperscriptAlef
	AlefWithFathatan
	BehWithAlefMaksura
	BehWithHah
	BehWithHahWithYeh
	BehWithHeh
	BehWithJeem
	BehWithKhah
	BehWithKhahWithYeh
	BehWithMeem
	BehWithNoon
	BehWithReh
	BehWithYeh
	BehWithZain
	DadWithAlefMaksura
	DadWithHah
	DadWithHahWithAlefMaksura
	DadWithHahWithYeh
	DadWithJeem
	DadWithKhah
	DadWithKhahWithMeem
	DadWithMeem
	DadWithReh
	DadWithYeh
	FehWithAlefMaksura
	FehWithHah
	FehWithJeem
	FehWithKhah
	FehWithKhahWithMeem
	FehWithMeem
	FehWithMeemWithYeh
	FehWithYeh
	GhainWithAlefMaksura
	GhainWithJeem
	GhainWithMeem
	GhainWithMeemWithAlefMaksura
	GhainWithMeemWithMeem
	GhainWithMeemWithYeh
	GhainWithYeh
	HahWithAlefMaksura
	HahWithJeem
	HahWithJeemWithYeh
	HahWithMeem
	HahWithMeemWithAlefMaksura
	HahWithMeemWithYeh
	HahWithYeh
	HehWithAlefMaksura
	HehWithJeem
	HehWithMeem
	HehWithMeemWithJeem
	HehWithMeemWithMeem
	HehWithSuperscriptAlef
	HehWithYeh
	JeemWithAlefMaksura
	JeemWithHah
	JeemWithHahWithAlefMaksura
	JeemWithHahWithYeh
	JeemWithMeem
	JeemWithMeemWithAlefMaksura
	JeemWithMeemWithHah
	JeemWithMeemWithYeh
	JeemWithYeh
	KafWithAlef
	KafWithAlefMaksura
	KafWithHah
	KafWithJeem
	KafWithKhah
	KafWithLam
	KafWithMeem
	KafWithMeemWithMeem
	KafWithMeemWithYeh
	KafWithYeh
	KhahWithAlefMaksura
	KhahWithHah
	KhahWithJeem
	KhahWithMeem
	KhahWithYeh
	LamWithAlef
	LamWithAlefMaksura
	LamWithAlefWithHamzaAbove
	LamWithAlefWithHamzaBelow
	LamWithAlefWithMaddaAbove
	LamWithHah
	LamWithHahWithAlefMaksura
	LamWithHahWithMeem
	LamWithHahWithYeh
	LamWithHeh
	LamWithJeem
	LamWithJeemWithJeem
	LamWithJeemWithMeem
	LamWithJeemWithYeh
	LamWithKhah
	LamWithKhahWithMeem
	LamWithMeem
	LamWithMeemWithHah
	LamWithMeemWithYeh
	LamWithYeh
	MeemWithAlef
	MeemWithAlefMaksura
	MeemWithHah
	MeemWithHahWithJeem
	MeemWithHahWithMeem
	MeemWithHahWithYeh
	MeemWithJeem
	MeemWithJeemWithHah
	MeemWithJeemWithKhah
	MeemWithJeemWithMeem
	MeemWithJeemWithYeh
	MeemWithKhah
	MeemWithKhahWithJeem
	MeemWithKhahWithMeem
	MeemWithKhahWithYeh
	MeemWithMeem
	MeemWithMeemWithYeh
	MeemWithYeh
	NoonWithAlefMaksura
	NoonWithHah
	NoonWithHahWithAlefMaksura
	NoonWithHahWithMeem
	NoonWithHahWithYeh
	NoonWithHeh
	NoonWithJeem
	NoonWithJeemWithAlefMaksura
	NoonWithJeemWithHah
	NoonWithJeemWithMeem
	NoonWithJeemWithYeh
	NoonWithKhah
	NoonWithMeem
	NoonWithMeemWithAlefMaksura
	NoonWithMeemWithYeh
	NoonWithNoon
	NoonWithReh
	NoonWithYeh
	NoonWithZain
	QafWithAlefMaksura
	QafWithHah
	QafWithMeem
	QafWithMeemWithHah
	QafWithMeemWithMeem
	QafWithMeemWithYeh
	QafWithYeh
	QalaUsedAsKoranicStopSign
	RehWithSuperscriptAlef
	SadWithAlefMaksura
	SadWithHah
	SadWithHahWithHah
	SadWithHahWithYeh
	SadWithKhah
	SadWithMeem
	SadWithMeemWithMeem
	SadWithReh
	SadWithYeh
	SallaUsedAsKoranicStopSign
	SeenWithAlefMaksura
	SeenWithHah
	SeenWithHahWithJeem
	SeenWithHeh
	SeenWithJeem
	SeenWithJeemWithAlefMaksura
	SeenWithJeemWithHah
	SeenWithKhah
	SeenWithKhahWithAlefMaksura
	SeenWithKhahWithYeh
	SeenWithMeem
	SeenWithMeemWithHah
	SeenWithMeemWithJeem
	SeenWithMeemWithMeem
	SeenWithReh
	SeenWithYeh
	ShaddaWithDammatanIsolatedForm
	ShaddaWithKasratanIsolatedForm
	ShaddaWithFathaIsolatedForm
	ShaddaWithDammaIsolatedForm
	ShaddaWithKasraIsolatedForm
	ShaddaWithSuperscriptAlef
	ShaddaWithFathaMedialForm
	ShaddaWithDammaMedialForm
	ShaddaWithKasraMedialForm
	ShaddaWithFatha
	ShaddaWithDamma
	ShaddaWithKasra
	SheenWithAlefMaksura
	SheenWithHah
	SheenWithHahWithMeem
	SheenWithHahWithYeh
	SheenWithHeh
	SheenWithJeem
	SheenWithJeemWithYeh
	SheenWithKhah
	SheenWithMeem
	SheenWithMeemWithKhah
	SheenWithMeemWithMeem
	SheenWithReh
	SheenWithYeh
	TahWithAlefMaksura
	TahWithHah
	TahWithMeem
	TahWithMeemWithHah
	TahWithMeemWithMeem
	TahWithMeemWithYeh
	TahWithYeh
	TehWithAlefMaksura
	TehWithHah
	TehWithHahWithJeem
	TehWithHahWithMeem
	TehWithHeh
	TehWithJeem
	TehWithJeemWithAlefMaksura
	TehWithJeemWithMeem
	TehWithJeemWithYeh
	TehWithKhah
	TehWithKhahWithAlefMaksura
	TehWithKhahWithMeem
	TehWithKhahWithYeh
	TehWithMeem
	TehWithMeemWithAlefMaksura
	TehWithMeemWithHah
	TehWithMeemWithJeem
	TehWithMeemWithKhah
	TehWithMeemWithYeh
	TehWithNoon
	TehWithReh
	TehWithYeh
	TehWithZain
	ThalWithSuperscriptAlef
	ThehWithAlefMaksura
	ThehWithHeh
	ThehWithJeem
	ThehWithMeem
	ThehWithNoon
	ThehWithReh
	ThehWithYeh
	ThehWithZain
	UighurKirghizYehWithHamzaAboveWithAlefMaksura
	YehWithAlefMaksura
	YehWithHah
	YehWithHahWithYeh
	YehWithHamzaAboveWithAe
	YehWithHamzaAboveWithAlef
	YehWithHamzaAboveWithAlefMaksura
	YehWithHamzaAboveWithE
	YehWithHamzaAboveWithHah
	YehWithHamzaAboveWithHeh
	YehWithHamzaAboveWithJeem
	YehWithHamzaAboveWithKhah
	YehWithHamzaAboveWithMeem
	YehWithHamzaAboveWithNoon
	YehWithHamzaAboveWithOe
	YehWithHamzaAboveWithReh
	YehWithHamzaAboveWithU
	YehWithHamzaAboveWithWaw
	YehWithHamzaAboveWithYeh
	YehWithHamzaAboveWithYu
	YehWithHamzaAboveWithZain
	YehWithHeh
	YehWithJeem
	YehWithJeemWithYeh
	YehWithKhah
	YehWithMeem
	YehWithMeemWithMeem
	YehWithMeemWithYeh
	YehWithNoon
	YehWithReh
	YehWithYeh
	YehWithZain
	ZahWithMeem
)

// Count is the number of ligature table entries.
const Count = 286

var table = [Count]Entry{
	BismillahArRahmanArRaheem:      {"BismillahArRahmanArRaheem", []string{"\u0628\u0633\u0645 \u0627\u0644\u0644\u0647 \u0627\u0644\u0631\u062D\u0645\u0646 \u0627\u0644\u0631\u062D\u064A\u0645"}, forms(0xFDFD, 0, 0, 0)},
	Jallajalalouhou:                {"Jallajalalouhou", []string{"\u062C\u0644 \u062C\u0644\u0627\u0644\u0647"}, forms(0xFDFB, 0, 0, 0)},
	SallallahouAlayheWasallam:      {"SallallahouAlayheWasallam", []string{"\u0635\u0644\u0649 \u0627\u0644\u0644\u0647 \u0639\u0644\u064A\u0647 \u0648\u0633\u0644\u0645"}, forms(0xFDFA, 0, 0, 0)},
	Allah:                          {"Allah", []string{"\u0627\u0644\u0644\u0647"}, forms(0xFDF2, 0, 0, 0)},
	Akbar:                          {"Akbar", []string{"\u0623\u0643\u0628\u0631"}, forms(0xFDF3, 0, 0, 0)},
	Alayhe:                         {"Alayhe", []string{"\u0639\u0644\u064A\u0647"}, forms(0xFDF7, 0, 0, 0)},
	Mohammad:                       {"Mohammad", []string{"\u0645\u062D\u0645\u062F"}, forms(0xFDF4, 0, 0, 0)},
	Rasoul:                         {"Rasoul", []string{"\u0631\u0633\u0648\u0644"}, forms(0xFDF6, 0, 0, 0)},
	Salam:                          {"Salam", []string{"\u0635\u0644\u0639\u0645"}, forms(0xFDF5, 0, 0, 0)},
	Salla:                          {"Salla", []string{"\u0635\u0644\u0649"}, forms(0xFDF9, 0, 0, 0)},
	Wasallam:                       {"Wasallam", []string{"\u0648\u0633\u0644\u0645"}, forms(0xFDF8, 0, 0, 0)},
	RialSign:                       {"RialSign", []string{"\u0631\u06CC\u0627\u0644", "\u0631\u064A\u0627\u0644"}, forms(0xFDFC, 0, 0, 0)},
	AinWithAlefMaksura:             {"AinWithAlefMaksura", []string{"\u0639\u0649"}, forms(0xFCF7, 0, 0, 0xFD13)},
	AinWithJeem:                    {"AinWithJeem", []string{"\u0639\u062C"}, forms(0xFC29, 0xFCBA, 0, 0)},
	AinWithJeemWithMeem:            {"AinWithJeemWithMeem", []string{"\u0639\u062C\u0645"}, forms(0, 0xFDC4, 0, 0xFD75)},
	AinWithMeem:                    {"AinWithMeem", []string{"\u0639\u0645"}, forms(0xFC2A, 0xFCBB, 0, 0)},
	AinWithMeemWithAlefMaksura:     {"AinWithMeemWithAlefMaksura", []string{"\u0639\u0645\u0649"}, forms(0, 0, 0, 0xFD78)},
	AinWithMeemWithMeem:            {"AinWithMeemWithMeem", []string{"\u0639\u0645\u0645"}, forms(0, 0xFD77, 0, 0xFD76)},
	AinWithMeemWithYeh:             {"AinWithMeemWithYeh", []string{"\u0639\u0645\u064A"}, forms(0, 0, 0, 0xFDB6)},
	AinWithYeh:                     {"AinWithYeh", []string{"\u0639\u064A"}, forms(0xFCF8, 0, 0, 0xFD14)},
	AlefMaksuraWithSuperscriptAlef: {"AlefMaksuraWithSuperscriptAlef", []string{"\u0649\u0670"}, forms(0xFC5D, 0, 0, 0xFC90)},
	AlefWithFathatan:               {"AlefWithFathatan", []string{"\u0627\u064B"}, forms(0xFD3D, 0, 0, 0xFD3C)},
	BehWithAlefMaksura:             {"BehWithAlefMaksura", []string{"\u0628\u0649"}, forms(0xFC09, 0, 0, 0xFC6E)},
	BehWithHah:                     {"BehWithHah", []string{"\u0628\u062D"}, forms(0xFC06, 0xFC9D, 0, 0)},
	BehWithHahWithYeh:              {"BehWithHahWithYeh", []string{"\u0628\u062D\u064A"}, forms(0, 0, 0, 0xFDC2)},
	BehWithHeh:                     {"BehWithHeh", []string{"\u0628\u0647"}, forms(0, 0xFCA0, 0xFCE2, 0)},
	BehWithJeem:                    {"BehWithJeem", []string{"\u0628\u062C"}, forms(0xFC05, 0xFC9C, 0, 0)},
	BehWithKhah:                    {"BehWithKhah", []string{"\u0628\u062E"}, forms(0xFC07, 0xFC9E, 0, 0)},
	BehWithKhahWithYeh:             {"BehWithKhahWithYeh", []string{"\u0628\u062E\u064A"}, forms(0, 0, 0, 0xFD9E)},
	BehWithMeem:                    {"BehWithMeem", []string{"\u0628\u0645"}, forms(0xFC08, 0xFC9F, 0xFCE1, 0xFC6C)},
	BehWithNoon:                    {"BehWithNoon", []string{"\u0628\u0646"}, forms(0, 0, 0, 0xFC6D)},
	BehWithReh:                     {"BehWithReh", []string{"\u0628\u0631"}, forms(0, 0, 0, 0xFC6A)},
	BehWithYeh:                     {"BehWithYeh", []string{"\u0628\u064A"}, forms(0xFC0A, 0, 0, 0xFC6F)},
	BehWithZain:                    {"BehWithZain", []string{"\u0628\u0632"}, forms(0, 0, 0, 0xFC6B)},
	DadWithAlefMaksura:             {"DadWithAlefMaksura", []string{"\u0636\u0649"}, forms(0xFD07, 0, 0, 0xFD23)},
	DadWithHah:                     {"DadWithHah", []string{"\u0636\u062D"}, forms(0xFC23, 0xFCB5, 0, 0)},
	DadWithHahWithAlefMaksura:      {"DadWithHahWithAlefMaksura", []string{"\u0636\u062D\u0649"}, forms(0, 0, 0, 0xFD6E)},
	DadWithHahWithYeh:              {"DadWithHahWithYeh", []string{"\u0636\u062D\u064A"}, forms(0, 0, 0, 0xFDAB)},
	DadWithJeem:                    {"DadWithJeem", []string{"\u0636\u062C"}, forms(0xFC22, 0xFCB4, 0, 0)},
	DadWithKhah:                    {"DadWithKhah", []string{"\u0636\u062E"}, forms(0xFC24, 0xFCB6, 0, 0)},
	DadWithKhahWithMeem:            {"DadWithKhahWithMeem", []string{"\u0636\u062E\u0645"}, forms(0, 0xFD70, 0, 0xFD6F)},
	DadWithMeem:                    {"DadWithMeem", []string{"\u0636\u0645"}, forms(0xFC25, 0xFCB7, 0, 0)},
	DadWithReh:                     {"DadWithReh", []string{"\u0636\u0631"}, forms(0xFD10, 0, 0, 0xFD2C)},
	DadWithYeh:                     {"DadWithYeh", []string{"\u0636\u064A"}, forms(0xFD08, 0, 0, 0xFD24)},
	FehWithAlefMaksura:             {"FehWithAlefMaksura", []string{"\u0641\u0649"}, forms(0xFC31, 0, 0, 0xFC7C)},
	FehWithHah:                     {"FehWithHah", []string{"\u0641\u062D"}, forms(0xFC2E, 0xFCBF, 0, 0)},
	FehWithJeem:                    {"FehWithJeem", []string{"\u0641\u062C"}, forms(0xFC2D, 0xFCBE, 0, 0)},
	FehWithKhah:                    {"FehWithKhah", []string{"\u0641\u062E"}, forms(0xFC2F, 0xFCC0, 0, 0)},
	FehWithKhahWithMeem:            {"FehWithKhahWithMeem", []string{"\u0641\u062E\u0645"}, forms(0, 0xFD7D, 0, 0xFD7C)},
	FehWithMeem:                    {"FehWithMeem", []string{"\u0641\u0645"}, forms(0xFC30, 0xFCC1, 0, 0)},
	FehWithMeemWithYeh:             {"FehWithMeemWithYeh", []string{"\u0641\u0645\u064A"}, forms(0, 0, 0, 0xFDC1)},
	FehWithYeh:                     {"FehWithYeh", []string{"\u0641\u064A"}, forms(0xFC32, 0, 0, 0xFC7D)},
	GhainWithAlefMaksura:           {"GhainWithAlefMaksura", []string{"\u063A\u0649"}, forms(0xFCF9, 0, 0, 0xFD15)},
	GhainWithJeem:                  {"GhainWithJeem", []string{"\u063A\u062C"}, forms(0xFC2B, 0xFCBC, 0, 0)},
	GhainWithMeem:                  {"GhainWithMeem", []string{"\u063A\u0645"}, forms(0xFC2C, 0xFCBD, 0, 0)},
	GhainWithMeemWithAlefMaksura:   {"GhainWithMeemWithAlefMaksura", []string{"\u063A\u0645\u0649"}, forms(0, 0, 0, 0xFD7B)},
	GhainWithMeemWithMeem:          {"GhainWithMeemWithMeem", []string{"\u063A\u0645\u0645"}, forms(0, 0, 0, 0xFD79)},
	GhainWithMeemWithYeh:           {"GhainWithMeemWithYeh", []string{"\u063A\u0645\u064A"}, forms(0, 0, 0, 0xFD7A)},
	GhainWithYeh:                   {"GhainWithYeh", []string{"\u063A\u064A"}, forms(0xFCFA, 0, 0, 0xFD16)},
	HahWithAlefMaksura:             {"HahWithAlefMaksura", []string{"\u062D\u0649"}, forms(0xFCFF, 0, 0, 0xFD1B)},
	HahWithJeem:                    {"HahWithJeem", []string{"\u062D\u062C"}, forms(0xFC17, 0xFCA9, 0, 0)},
	HahWithJeemWithYeh:             {"HahWithJeemWithYeh", []string{"\u062D\u062C\u064A"}, forms(0, 0, 0, 0xFDBF)},
	HahWithMeem:                    {"HahWithMeem", []string{"\u062D\u0645"}, forms(0xFC18, 0xFCAA, 0, 0)},
	HahWithMeemWithAlefMaksura:     {"HahWithMeemWithAlefMaksura", []string{"\u062D\u0645\u0649"}, forms(0, 0, 0, 0xFD5B)},
	HahWithMeemWithYeh:             {"HahWithMeemWithYeh", []string{"\u062D\u0645\u064A"}, forms(0, 0, 0, 0xFD5A)},
	HahWithYeh:                     {"HahWithYeh", []string{"\u062D\u064A"}, forms(0xFD00, 0, 0, 0xFD1C)},
	HehWithAlefMaksura:             {"HehWithAlefMaksura", []string{"\u0647\u0649"}, forms(0xFC53, 0, 0, 0)},
	HehWithJeem:                    {"HehWithJeem", []string{"\u0647\u062C"}, forms(0xFC51, 0xFCD7, 0, 0)},
	HehWithMeem:                    {"HehWithMeem", []string{"\u0647\u0645"}, forms(0xFC52, 0xFCD8, 0, 0)},
	HehWithMeemWithJeem:            {"HehWithMeemWithJeem", []string{"\u0647\u0645\u062C"}, forms(0, 0xFD93, 0, 0)},
	HehWithMeemWithMeem:            {"HehWithMeemWithMeem", []string{"\u0647\u0645\u0645"}, forms(0, 0xFD94, 0, 0)},
	HehWithSuperscriptAlef:         {"HehWithSuperscriptAlef", []string{"\u0647\u0670"}, forms(0, 0xFCD9, 0, 0)},
	HehWithYeh:                     {"HehWithYeh", []string{"\u0647\u064A"}, forms(0xFC54, 0, 0, 0)},
	JeemWithAlefMaksura:            {"JeemWithAlefMaksura", []string{"\u062C\u0649"}, forms(0xFD01, 0, 0, 0xFD1D)},
	JeemWithHah:                    {"JeemWithHah", []string{"\u062C\u062D"}, forms(0xFC15, 0xFCA7, 0, 0)},
	JeemWithHahWithAlefMaksura:     {"JeemWithHahWithAlefMaksura", []string{"\u062C\u062D\u0649"}, forms(0, 0, 0, 0xFDA6)},
	JeemWithHahWithYeh:             {"JeemWithHahWithYeh", []string{"\u062C\u062D\u064A"}, forms(0, 0, 0, 0xFDBE)},
	JeemWithMeem:                   {"JeemWithMeem", []string{"\u062C\u0645"}, forms(0xFC16, 0xFCA8, 0, 0)},
	JeemWithMeemWithAlefMaksura:    {"JeemWithMeemWithAlefMaksura", []string{"\u062C\u0645\u0649"}, forms(0, 0, 0, 0xFDA7)},
	JeemWithMeemWithHah:            {"JeemWithMeemWithHah", []string{"\u062C\u0645\u062D"}, forms(0, 0xFD59, 0, 0xFD58)},
	JeemWithMeemWithYeh:            {"JeemWithMeemWithYeh", []string{"\u062C\u0645\u064A"}, forms(0, 0, 0, 0xFDA5)},
	JeemWithYeh:                    {"JeemWithYeh", []string{"\u062C\u064A"}, forms(0xFD02, 0, 0, 0xFD1E)},
	KafWithAlef:                    {"KafWithAlef", []string{"\u0643\u0627"}, forms(0xFC37, 0, 0, 0xFC80)},
	KafWithAlefMaksura:             {"KafWithAlefMaksura", []string{"\u0643\u0649"}, forms(0xFC3D, 0, 0, 0xFC83)},
	KafWithHah:                     {"KafWithHah", []string{"\u0643\u062D"}, forms(0xFC39, 0xFCC5, 0, 0)},
	KafWithJeem:                    {"KafWithJeem", []string{"\u0643\u062C"}, forms(0xFC38, 0xFCC4, 0, 0)},
	KafWithKhah:                    {"KafWithKhah", []string{"\u0643\u062E"}, forms(0xFC3A, 0xFCC6, 0, 0)},
	KafWithLam:                     {"KafWithLam", []string{"\u0643\u0644"}, forms(0xFC3B, 0xFCC7, 0xFCEB, 0xFC81)},
	KafWithMeem:                    {"KafWithMeem", []string{"\u0643\u0645"}, forms(0xFC3C, 0xFCC8, 0xFCEC, 0xFC82)},
	KafWithMeemWithMeem:            {"KafWithMeemWithMeem", []string{"\u0643\u0645\u0645"}, forms(0, 0xFDC3, 0, 0xFDBB)},
	KafWithMeemWithYeh:             {"KafWithMeemWithYeh", []string{"\u0643\u0645\u064A"}, forms(0, 0, 0, 0xFDB7)},
	KafWithYeh:                     {"KafWithYeh", []string{"\u0643\u064A"}, forms(0xFC3E, 0, 0, 0xFC84)},
	KhahWithAlefMaksura:            {"KhahWithAlefMaksura", []string{"\u062E\u0649"}, forms(0xFD03, 0, 0, 0xFD1F)},
	KhahWithHah:                    {"KhahWithHah", []string{"\u062E\u062D"}, forms(0xFC1A, 0, 0, 0)},
	KhahWithJeem:                   {"KhahWithJeem", []string{"\u062E\u062C"}, forms(0xFC19, 0xFCAB, 0, 0)},
	KhahWithMeem:                   {"KhahWithMeem", []string{"\u062E\u0645"}, forms(0xFC1B, 0xFCAC, 0, 0)},
	KhahWithYeh:                    {"KhahWithYeh", []string{"\u062E\u064A"}, forms(0xFD04, 0, 0, 0xFD20)},
	LamWithAlef:                    {"LamWithAlef", []string{"\u0644\u0627"}, forms(0xFEFB, 0, 0, 0xFEFC)},
	LamWithAlefMaksura:             {"LamWithAlefMaksura", []string{"\u0644\u0649"}, forms(0xFC43, 0, 0, 0xFC86)},
	LamWithAlefWithHamzaAbove:      {"LamWithAlefWithHamzaAbove", []string{"\u0644\u0623"}, forms(0xFEF7, 0, 0, 0xFEF8)},
	LamWithAlefWithHamzaBelow:      {"LamWithAlefWithHamzaBelow", []string{"\u0644\u0625"}, forms(0xFEF9, 0, 0, 0xFEFA)},
	LamWithAlefWithMaddaAbove:      {"LamWithAlefWithMaddaAbove", []string{"\u0644\u0622"}, forms(0xFEF5, 0, 0, 0xFEF6)},
	LamWithHah:                     {"LamWithHah", []string{"\u0644\u062D"}, forms(0xFC40, 0xFCCA, 0, 0)},
	LamWithHahWithAlefMaksura:      {"LamWithHahWithAlefMaksura", []string{"\u0644\u062D\u0649"}, forms(0, 0, 0, 0xFD82)},
	LamWithHahWithMeem:             {"LamWithHahWithMeem", []string{"\u0644\u062D\u0645"}, forms(0, 0xFDB5, 0, 0xFD80)},
	LamWithHahWithYeh:              {"LamWithHahWithYeh", []string{"\u0644\u062D\u064A"}, forms(0, 0, 0, 0xFD81)},
	LamWithHeh:                     {"LamWithHeh", []string{"\u0644\u0647"}, forms(0, 0xFCCD, 0, 0)},
	LamWithJeem:                    {"LamWithJeem", []string{"\u0644\u062C"}, forms(0xFC3F, 0xFCC9, 0, 0)},
	LamWithJeemWithJeem:            {"LamWithJeemWithJeem", []string{"\u0644\u062C\u062C"}, forms(0, 0xFD83, 0, 0xFD84)},
	LamWithJeemWithMeem:            {"LamWithJeemWithMeem", []string{"\u0644\u062C\u0645"}, forms(0, 0xFDBA, 0, 0xFDBC)},
	LamWithJeemWithYeh:             {"LamWithJeemWithYeh", []string{"\u0644\u062C\u064A"}, forms(0, 0, 0, 0xFDAC)},
	LamWithKhah:                    {"LamWithKhah", []string{"\u0644\u062E"}, forms(0xFC41, 0xFCCB, 0, 0)},
	LamWithKhahWithMeem:            {"LamWithKhahWithMeem", []string{"\u0644\u062E\u0645"}, forms(0, 0xFD86, 0, 0xFD85)},
	LamWithMeem:                    {"LamWithMeem", []string{"\u0644\u0645"}, forms(0xFC42, 0xFCCC, 0xFCED, 0xFC85)},
	LamWithMeemWithHah:             {"LamWithMeemWithHah", []string{"\u0644\u0645\u062D"}, forms(0, 0xFD88, 0, 0xFD87)},
	LamWithMeemWithYeh:             {"LamWithMeemWithYeh", []string{"\u0644\u0645\u064A"}, forms(0, 0, 0, 0xFDAD)},
	LamWithYeh:                     {"LamWithYeh", []string{"\u0644\u064A"}, forms(0xFC44, 0, 0, 0xFC87)},
	MeemWithAlef:                   {"MeemWithAlef", []string{"\u0645\u0627"}, forms(0, 0, 0, 0xFC88)},
	MeemWithAlefMaksura:            {"MeemWithAlefMaksura", []string{"\u0645\u0649"}, forms(0xFC49, 0, 0, 0)},
	MeemWithHah:                    {"MeemWithHah", []string{"\u0645\u062D"}, forms(0xFC46, 0xFCCF, 0, 0)},
	MeemWithHahWithJeem:            {"MeemWithHahWithJeem", []string{"\u0645\u062D\u062C"}, forms(0, 0xFD89, 0, 0)},
	MeemWithHahWithMeem:            {"MeemWithHahWithMeem", []string{"\u0645\u062D\u0645"}, forms(0, 0xFD8A, 0, 0)},
	MeemWithHahWithYeh:             {"MeemWithHahWithYeh", []string{"\u0645\u062D\u064A"}, forms(0, 0, 0, 0xFD8B)},
	MeemWithJeem:                   {"MeemWithJeem", []string{"\u0645\u062C"}, forms(0xFC45, 0xFCCE, 0, 0)},
	MeemWithJeemWithHah:            {"MeemWithJeemWithHah", []string{"\u0645\u062C\u062D"}, forms(0, 0xFD8C, 0, 0)},
	MeemWithJeemWithKhah:           {"MeemWithJeemWithKhah", []string{"\u0645\u062C\u062E"}, forms(0, 0xFD92, 0, 0)},
	MeemWithJeemWithMeem:           {"MeemWithJeemWithMeem", []string{"\u0645\u062C\u0645"}, forms(0, 0xFD8D, 0, 0)},
	MeemWithJeemWithYeh:            {"MeemWithJeemWithYeh", []string{"\u0645\u062C\u064A"}, forms(0, 0, 0, 0xFDC0)},
	MeemWithKhah:                   {"MeemWithKhah", []string{"\u0645\u062E"}, forms(0xFC47, 0xFCD0, 0, 0)},
	MeemWithKhahWithJeem:           {"MeemWithKhahWithJeem", []string{"\u0645\u062E\u062C"}, forms(0, 0xFD8E, 0, 0)},
	MeemWithKhahWithMeem:           {"MeemWithKhahWithMeem", []string{"\u0645\u062E\u0645"}, forms(0, 0xFD8F, 0, 0)},
	MeemWithKhahWithYeh:            {"MeemWithKhahWithYeh", []string{"\u0645\u062E\u064A"}, forms(0, 0, 0, 0xFDB9)},
	MeemWithMeem:                   {"MeemWithMeem", []string{"\u0645\u0645"}, forms(0xFC48, 0xFCD1, 0, 0xFC89)},
	MeemWithMeemWithYeh:            {"MeemWithMeemWithYeh", []string{"\u0645\u0645\u064A"}, forms(0, 0, 0, 0xFDB1)},
	MeemWithYeh:                    {"MeemWithYeh", []string{"\u0645\u064A"}, forms(0xFC4A, 0, 0, 0)},
	NoonWithAlefMaksura:            {"NoonWithAlefMaksura", []string{"\u0646\u0649"}, forms(0xFC4F, 0, 0, 0xFC8E)},
	NoonWithHah:                    {"NoonWithHah", []string{"\u0646\u062D"}, forms(0xFC4C, 0xFCD3, 0, 0)},
	NoonWithHahWithAlefMaksura:     {"NoonWithHahWithAlefMaksura", []string{"\u0646\u062D\u0649"}, forms(0, 0, 0, 0xFD96)},
	NoonWithHahWithMeem:            {"NoonWithHahWithMeem", []string{"\u0646\u062D\u0645"}, forms(0, 0xFD95, 0, 0)},
	NoonWithHahWithYeh:             {"NoonWithHahWithYeh", []string{"\u0646\u062D\u064A"}, forms(0, 0, 0, 0xFDB3)},
	NoonWithHeh:                    {"NoonWithHeh", []string{"\u0646\u0647"}, forms(0, 0xFCD6, 0xFCEF, 0)},
	NoonWithJeem:                   {"NoonWithJeem", []string{"\u0646\u062C"}, forms(0xFC4B, 0xFCD2, 0, 0)},
	NoonWithJeemWithAlefMaksura:    {"NoonWithJeemWithAlefMaksura", []string{"\u0646\u062C\u0649"}, forms(0, 0, 0, 0xFD99)},
	NoonWithJeemWithHah:            {"NoonWithJeemWithHah", []string{"\u0646\u062C\u062D"}, forms(0, 0xFDB8, 0, 0xFDBD)},
	NoonWithJeemWithMeem:           {"NoonWithJeemWithMeem", []string{"\u0646\u062C\u0645"}, forms(0, 0xFD98, 0, 0xFD97)},
	NoonWithJeemWithYeh:            {"NoonWithJeemWithYeh", []string{"\u0646\u062C\u064A"}, forms(0, 0, 0, 0xFDC7)},
	NoonWithKhah:                   {"NoonWithKhah", []string{"\u0646\u062E"}, forms(0xFC4D, 0xFCD4, 0, 0)},
	NoonWithMeem:                   {"NoonWithMeem", []string{"\u0646\u0645"}, forms(0xFC4E, 0xFCD5, 0xFCEE, 0xFC8C)},
	NoonWithMeemWithAlefMaksura:    {"NoonWithMeemWithAlefMaksura", []string{"\u0646\u0645\u0649"}, forms(0, 0, 0, 0xFD9B)},
	NoonWithMeemWithYeh:            {"NoonWithMeemWithYeh", []string{"\u0646\u0645\u064A"}, forms(0, 0, 0, 0xFD9A)},
	NoonWithNoon:                   {"NoonWithNoon", []string{"\u0646\u0646"}, forms(0, 0, 0, 0xFC8D)},
	NoonWithReh:                    {"NoonWithReh", []string{"\u0646\u0631"}, forms(0, 0, 0, 0xFC8A)},
	NoonWithYeh:                    {"NoonWithYeh", []string{"\u0646\u064A"}, forms(0xFC50, 0, 0, 0xFC8F)},
	NoonWithZain:                   {"NoonWithZain", []string{"\u0646\u0632"}, forms(0, 0, 0, 0xFC8B)},
	QafWithAlefMaksura:             {"QafWithAlefMaksura", []string{"\u0642\u0649"}, forms(0xFC35, 0, 0, 0xFC7E)},
	QafWithHah:                     {"QafWithHah", []string{"\u0642\u062D"}, forms(0xFC33, 0xFCC2, 0, 0)},
	QafWithMeem:                    {"QafWithMeem", []string{"\u0642\u0645"}, forms(0xFC34, 0xFCC3, 0, 0)},
	QafWithMeemWithHah:             {"QafWithMeemWithHah", []string{"\u0642\u0645\u062D"}, forms(0, 0xFDB4, 0, 0xFD7E)},
	QafWithMeemWithMeem:            {"QafWithMeemWithMeem", []string{"\u0642\u0645\u0645"}, forms(0, 0, 0, 0xFD7F)},
	QafWithMeemWithYeh:             {"QafWithMeemWithYeh", []string{"\u0642\u0645\u064A"}, forms(0, 0, 0, 0xFDB2)},
	QafWithYeh:                     {"QafWithYeh", []string{"\u0642\u064A"}, forms(0xFC36, 0, 0, 0xFC7F)},
	QalaUsedAsKoranicStopSign:      {"QalaUsedAsKoranicStopSign", []string{"\u0642\u0644\u06D2"}, forms(0xFDF1, 0, 0, 0)},
	RehWithSuperscriptAlef:         {"RehWithSuperscriptAlef", []string{"\u0631\u0670"}, forms(0xFC5C, 0, 0, 0)},
	SadWithAlefMaksura:             {"SadWithAlefMaksura", []string{"\u0635\u0649"}, forms(0xFD05, 0, 0, 0xFD21)},
	SadWithHah:                     {"SadWithHah", []string{"\u0635\u062D"}, forms(0xFC20, 0xFCB1, 0, 0)},
	SadWithHahWithHah:              {"SadWithHahWithHah", []string{"\u0635\u062D\u062D"}, forms(0, 0xFD65, 0, 0xFD64)},
	SadWithHahWithYeh:              {"SadWithHahWithYeh", []string{"\u0635\u062D\u064A"}, forms(0, 0, 0, 0xFDA9)},
	SadWithKhah:                    {"SadWithKhah", []string{"\u0635\u062E"}, forms(0, 0xFCB2, 0, 0)},
	SadWithMeem:                    {"SadWithMeem", []string{"\u0635\u0645"}, forms(0xFC21, 0xFCB3, 0, 0)},
	SadWithMeemWithMeem:            {"SadWithMeemWithMeem", []string{"\u0635\u0645\u0645"}, forms(0, 0xFDC5, 0, 0xFD66)},
	SadWithReh:                     {"SadWithReh", []string{"\u0635\u0631"}, forms(0xFD0F, 0, 0, 0xFD2B)},
	SadWithYeh:                     {"SadWithYeh", []string{"\u0635\u064A"}, forms(0xFD06, 0, 0, 0xFD22)},
	SallaUsedAsKoranicStopSign:     {"SallaUsedAsKoranicStopSign", []string{"\u0635\u0644\u06D2"}, forms(0xFDF0, 0, 0, 0)},
	SeenWithAlefMaksura:            {"SeenWithAlefMaksura", []string{"\u0633\u0649"}, forms(0xFCFB, 0, 0, 0xFD17)},
	SeenWithHah:                    {"SeenWithHah", []string{"\u0633\u062D"}, forms(0xFC1D, 0xFCAE, 0xFD35, 0)},
	SeenWithHahWithJeem:            {"SeenWithHahWithJeem", []string{"\u0633\u062D\u062C"}, forms(0, 0xFD5C, 0, 0)},
	SeenWithHeh:                    {"SeenWithHeh", []string{"\u0633\u0647"}, forms(0, 0xFD31, 0xFCE8, 0)},
	SeenWithJeem:                   {"SeenWithJeem", []string{"\u0633\u062C"}, forms(0xFC1C, 0xFCAD, 0xFD34, 0)},
	SeenWithJeemWithAlefMaksura:    {"SeenWithJeemWithAlefMaksura", []string{"\u0633\u062C\u0649"}, forms(0, 0, 0, 0xFD5E)},
	SeenWithJeemWithHah:            {"SeenWithJeemWithHah", []string{"\u0633\u062C\u062D"}, forms(0, 0xFD5D, 0, 0)},
	SeenWithKhah:                   {"SeenWithKhah", []string{"\u0633\u062E"}, forms(0xFC1E, 0xFCAF, 0xFD36, 0)},
	SeenWithKhahWithAlefMaksura:    {"SeenWithKhahWithAlefMaksura", []string{"\u0633\u062E\u0649"}, forms(0, 0, 0, 0xFDA8)},
	SeenWithKhahWithYeh:            {"SeenWithKhahWithYeh", []string{"\u0633\u062E\u064A"}, forms(0, 0, 0, 0xFDC6)},
	SeenWithMeem:                   {"SeenWithMeem", []string{"\u0633\u0645"}, forms(0xFC1F, 0xFCB0, 0xFCE7, 0)},
	SeenWithMeemWithHah:            {"SeenWithMeemWithHah", []string{"\u0633\u0645\u062D"}, forms(0, 0xFD60, 0, 0xFD5F)},
	SeenWithMeemWithJeem:           {"SeenWithMeemWithJeem", []string{"\u0633\u0645\u062C"}, forms(0, 0xFD61, 0, 0)},
	SeenWithMeemWithMeem:           {"SeenWithMeemWithMeem", []string{"\u0633\u0645\u0645"}, forms(0, 0xFD63, 0, 0xFD62)},
	SeenWithReh:                    {"SeenWithReh", []string{"\u0633\u0631"}, forms(0xFD0E, 0, 0, 0xFD2A)},
	SeenWithYeh:                    {"SeenWithYeh", []string{"\u0633\u064A"}, forms(0xFCFC, 0, 0, 0xFD18)},
	ShaddaWithDammatanIsolatedForm: {"ShaddaWithDammatanIsolatedForm", []string{"\u064C\u0651", "\u0651\u064C"}, forms(0xFC5E, 0xFC5E, 0xFC5E, 0xFC5E)},
	ShaddaWithKasratanIsolatedForm: {"ShaddaWithKasratanIsolatedForm", []string{"\u064D\u0651", "\u0651\u064D"}, forms(0xFC5F, 0xFC5F, 0xFC5F, 0xFC5F)},
	ShaddaWithFathaIsolatedForm:    {"ShaddaWithFathaIsolatedForm", []string{"\u064E\u0651", "\u0651\u064E"}, forms(0xFC60, 0xFC60, 0xFC60, 0xFC60)},
	ShaddaWithDammaIsolatedForm:    {"ShaddaWithDammaIsolatedForm", []string{"\u064F\u0651", "\u0651\u064F"}, forms(0xFC61, 0xFC61, 0xFC61, 0xFC61)},
	ShaddaWithKasraIsolatedForm:    {"ShaddaWithKasraIsolatedForm", []string{"\u0650\u0651", "\u0651\u0650"}, forms(0xFC62, 0xFC62, 0xFC62, 0xFC62)},
	ShaddaWithSuperscriptAlef:      {"ShaddaWithSuperscriptAlef", []string{"\u0651\u0670", "\u0670\u0651"}, forms(0xFC63, 0, 0, 0)},
	ShaddaWithFathaMedialForm:      {"ShaddaWithFathaMedialForm", []string{"\u0640\u064E\u0651", "\u0640\u0651\u064E"}, forms(0xFCF2, 0xFCF2, 0xFCF2, 0xFCF2)},
	ShaddaWithDammaMedialForm:      {"ShaddaWithDammaMedialForm", []string{"\u0640\u064F\u0651", "\u0640\u0651\u064F"}, forms(0xFCF3, 0xFCF3, 0xFCF3, 0xFCF3)},
	ShaddaWithKasraMedialForm:      {"ShaddaWithKasraMedialForm", []string{"\u0640\u0650\u0651", "\u0640\u0651\u0650"}, forms(0xFCF4, 0xFCF4, 0xFCF4, 0xFCF4)},
	ShaddaWithFatha:                {"ShaddaWithFatha", []string{"\u0640\u064E\u0651", "\u0640\u0651\u064E"}, forms(0xFCF2, 0xFCF2, 0xFCF2, 0xFCF2)},
	ShaddaWithDamma:                {"ShaddaWithDamma", []string{"\u0640\u064F\u0651", "\u0640\u0651\u064F"}, forms(0xFCF3, 0xFCF3, 0xFCF3, 0xFCF3)},
	ShaddaWithKasra:                {"ShaddaWithKasra", []string{"\u0640\u0650\u0651", "\u0640\u0651\u0650"}, forms(0xFCF4, 0xFCF4, 0xFCF4, 0xFCF4)},
	SheenWithAlefMaksura:           {"SheenWithAlefMaksura", []string{"\u0634\u0649"}, forms(0xFCFD, 0, 0, 0xFD19)},
	SheenWithHah:                   {"SheenWithHah", []string{"\u0634\u062D"}, forms(0xFD0A, 0xFD2E, 0xFD38, 0xFD26)},
	SheenWithHahWithMeem:           {"SheenWithHahWithMeem", []string{"\u0634\u062D\u0645"}, forms(0, 0xFD68, 0, 0xFD67)},
	SheenWithHahWithYeh:            {"SheenWithHahWithYeh", []string{"\u0634\u062D\u064A"}, forms(0, 0, 0, 0xFDAA)},
	SheenWithHeh:                   {"SheenWithHeh", []string{"\u0634\u0647"}, forms(0, 0xFD32, 0xFCEA, 0)},
	SheenWithJeem:                  {"SheenWithJeem", []string{"\u0634\u062C"}, forms(0xFD09, 0xFD2D, 0xFD37, 0xFD25)},
	SheenWithJeemWithYeh:           {"SheenWithJeemWithYeh", []string{"\u0634\u062C\u064A"}, forms(0, 0, 0, 0xFD69)},
	SheenWithKhah:                  {"SheenWithKhah", []string{"\u0634\u062E"}, forms(0xFD0B, 0xFD2F, 0xFD39, 0xFD27)},
	SheenWithMeem:                  {"SheenWithMeem", []string{"\u0634\u0645"}, forms(0xFD0C, 0xFD30, 0xFCE9, 0xFD28)},
	SheenWithMeemWithKhah:          {"SheenWithMeemWithKhah", []string{"\u0634\u0645\u062E"}, forms(0, 0xFD6B, 0, 0xFD6A)},
	SheenWithMeemWithMeem:          {"SheenWithMeemWithMeem", []string{"\u0634\u0645\u0645"}, forms(0, 0xFD6D, 0, 0xFD6C)},
	SheenWithReh:                   {"SheenWithReh", []string{"\u0634\u0631"}, forms(0xFD0D, 0, 0, 0xFD29)},
	SheenWithYeh:                   {"SheenWithYeh", []string{"\u0634\u064A"}, forms(0xFCFE, 0, 0, 0xFD1A)},
	TahWithAlefMaksura:             {"TahWithAlefMaksura", []string{"\u0637\u0649"}, forms(0xFCF5, 0, 0, 0xFD11)},
	TahWithHah:                     {"TahWithHah", []string{"\u0637\u062D"}, forms(0xFC26, 0xFCB8, 0, 0)},
	TahWithMeem:                    {"TahWithMeem", []string{"\u0637\u0645"}, forms(0xFC27, 0xFD33, 0xFD3A, 0)},
	TahWithMeemWithHah:             {"TahWithMeemWithHah", []string{"\u0637\u0645\u062D"}, forms(0, 0xFD72, 0, 0xFD71)},
	TahWithMeemWithMeem:            {"TahWithMeemWithMeem", []string{"\u0637\u0645\u0645"}, forms(0, 0xFD73, 0, 0)},
	TahWithMeemWithYeh:             {"TahWithMeemWithYeh", []string{"\u0637\u0645\u064A"}, forms(0, 0, 0, 0xFD74)},
	TahWithYeh:                     {"TahWithYeh", []string{"\u0637\u064A"}, forms(0xFCF6, 0, 0, 0xFD12)},
	TehWithAlefMaksura:             {"TehWithAlefMaksura", []string{"\u062A\u0649"}, forms(0xFC0F, 0, 0, 0xFC74)},
	TehWithHah:                     {"TehWithHah", []string{"\u062A\u062D"}, forms(0xFC0C, 0xFCA2, 0, 0)},
	TehWithHahWithJeem:             {"TehWithHahWithJeem", []string{"\u062A\u062D\u062C"}, forms(0, 0xFD52, 0, 0xFD51)},
	TehWithHahWithMeem:             {"TehWithHahWithMeem", []string{"\u062A\u062D\u0645"}, forms(0, 0xFD53, 0, 0)},
	TehWithHeh:                     {"TehWithHeh", []string{"\u062A\u0647"}, forms(0, 0xFCA5, 0xFCE4, 0)},
	TehWithJeem:                    {"TehWithJeem", []string{"\u062A\u062C"}, forms(0xFC0B, 0xFCA1, 0, 0)},
	TehWithJeemWithAlefMaksura:     {"TehWithJeemWithAlefMaksura", []string{"\u062A\u062C\u0649"}, forms(0, 0, 0, 0xFDA0)},
	TehWithJeemWithMeem:            {"TehWithJeemWithMeem", []string{"\u062A\u062C\u0645"}, forms(0, 0xFD50, 0, 0)},
	TehWithJeemWithYeh:             {"TehWithJeemWithYeh", []string{"\u062A\u062C\u064A"}, forms(0, 0, 0, 0xFD9F)},
	TehWithKhah:                    {"TehWithKhah", []string{"\u062A\u062E"}, forms(0xFC0D, 0xFCA3, 0, 0)},
	TehWithKhahWithAlefMaksura:     {"TehWithKhahWithAlefMaksura", []string{"\u062A\u062E\u0649"}, forms(0, 0, 0, 0xFDA2)},
	TehWithKhahWithMeem:            {"TehWithKhahWithMeem", []string{"\u062A\u062E\u0645"}, forms(0, 0xFD54, 0, 0)},
	TehWithKhahWithYeh:             {"TehWithKhahWithYeh", []string{"\u062A\u062E\u064A"}, forms(0, 0, 0, 0xFDA1)},
	TehWithMeem:                    {"TehWithMeem", []string{"\u062A\u0645"}, forms(0xFC0E, 0xFCA4, 0xFCE3, 0xFC72)},
	TehWithMeemWithAlefMaksura:     {"TehWithMeemWithAlefMaksura", []string{"\u062A\u0645\u0649"}, forms(0, 0, 0, 0xFDA4)},
	TehWithMeemWithHah:             {"TehWithMeemWithHah", []string{"\u062A\u0645\u062D"}, forms(0, 0xFD56, 0, 0)},
	TehWithMeemWithJeem:            {"TehWithMeemWithJeem", []string{"\u062A\u0645\u062C"}, forms(0, 0xFD55, 0, 0)},
	TehWithMeemWithKhah:            {"TehWithMeemWithKhah", []string{"\u062A\u0645\u062E"}, forms(0, 0xFD57, 0, 0)},
	TehWithMeemWithYeh:             {"TehWithMeemWithYeh", []string{"\u062A\u0645\u064A"}, forms(0, 0, 0, 0xFDA3)},
	TehWithNoon:                    {"TehWithNoon", []string{"\u062A\u0646"}, forms(0, 0, 0, 0xFC73)},
	TehWithReh:                     {"TehWithReh", []string{"\u062A\u0631"}, forms(0, 0, 0, 0xFC70)},
	TehWithYeh:                     {"TehWithYeh", []string{"\u062A\u064A"}, forms(0xFC10, 0, 0, 0xFC75)},
	TehWithZain:                    {"TehWithZain", []string{"\u062A\u0632"}, forms(0, 0, 0, 0xFC71)},
	ThalWithSuperscriptAlef:        {"ThalWithSuperscriptAlef", []string{"\u0630\u0670"}, forms(0xFC5B, 0, 0, 0)},
	ThehWithAlefMaksura:            {"ThehWithAlefMaksura", []string{"\u062B\u0649"}, forms(0xFC13, 0, 0, 0xFC7A)},
	ThehWithHeh:                    {"ThehWithHeh", []string{"\u062B\u0647"}, forms(0, 0, 0xFCE6, 0)},
	ThehWithJeem:                   {"ThehWithJeem", []string{"\u062B\u062C"}, forms(0xFC11, 0, 0, 0)},
	ThehWithMeem:                   {"ThehWithMeem", []string{"\u062B\u0645"}, forms(0xFC12, 0xFCA6, 0xFCE5, 0xFC78)},
	ThehWithNoon:                   {"ThehWithNoon", []string{"\u062B\u0646"}, forms(0, 0, 0, 0xFC79)},
	ThehWithReh:                    {"ThehWithReh", []string{"\u062B\u0631"}, forms(0, 0, 0, 0xFC76)},
	ThehWithYeh:                    {"ThehWithYeh", []string{"\u062B\u064A"}, forms(0xFC14, 0, 0, 0xFC7B)},
	ThehWithZain:                   {"ThehWithZain", []string{"\u062B\u0632"}, forms(0, 0, 0, 0xFC77)},
	UighurKirghizYehWithHamzaAboveWithAlefMaksura: {"UighurKirghizYehWithHamzaAboveWithAlefMaksura", []string{"\u0626\u0649"}, forms(0xFBF9, 0xFBFB, 0, 0xFBFA)},
	YehWithAlefMaksura:                            {"YehWithAlefMaksura", []string{"\u064A\u0649"}, forms(0xFC59, 0, 0, 0xFC95)},
	YehWithHah:                                    {"YehWithHah", []string{"\u064A\u062D"}, forms(0xFC56, 0xFCDB, 0, 0)},
	YehWithHahWithYeh:                             {"YehWithHahWithYeh", []string{"\u064A\u062D\u064A"}, forms(0, 0, 0, 0xFDAE)},
	YehWithHamzaAboveWithAe:                       {"YehWithHamzaAboveWithAe", []string{"\u0626\u06D5"}, forms(0xFBEC, 0, 0, 0xFBED)},
	YehWithHamzaAboveWithAlef:                     {"YehWithHamzaAboveWithAlef", []string{"\u0626\u0627"}, forms(0xFBEA, 0, 0, 0xFBEB)},
	YehWithHamzaAboveWithAlefMaksura:              {"YehWithHamzaAboveWithAlefMaksura", []string{"\u0626\u0649"}, forms(0xFC03, 0, 0, 0xFC68)},
	YehWithHamzaAboveWithE:                        {"YehWithHamzaAboveWithE", []string{"\u0626\u06D0"}, forms(0xFBF6, 0xFBF8, 0, 0xFBF7)},
	YehWithHamzaAboveWithHah:                      {"YehWithHamzaAboveWithHah", []string{"\u0626\u062D"}, forms(0xFC01, 0xFC98, 0, 0)},
	YehWithHamzaAboveWithHeh:                      {"YehWithHamzaAboveWithHeh", []string{"\u0626\u0647"}, forms(0, 0xFC9B, 0xFCE0, 0)},
	YehWithHamzaAboveWithJeem:                     {"YehWithHamzaAboveWithJeem", []string{"\u0626\u062C"}, forms(0xFC00, 0xFC97, 0, 0)},
	YehWithHamzaAboveWithKhah:                     {"YehWithHamzaAboveWithKhah", []string{"\u0626\u062E"}, forms(0, 0xFC99, 0, 0)},
	YehWithHamzaAboveWithMeem:                     {"YehWithHamzaAboveWithMeem", []string{"\u0626\u0645"}, forms(0xFC02, 0xFC9A, 0xFCDF, 0xFC66)},
	YehWithHamzaAboveWithNoon:                     {"YehWithHamzaAboveWithNoon", []string{"\u0626\u0646"}, forms(0, 0, 0, 0xFC67)},
	YehWithHamzaAboveWithOe:                       {"YehWithHamzaAboveWithOe", []string{"\u0626\u06C6"}, forms(0xFBF2, 0, 0, 0xFBF3)},
	YehWithHamzaAboveWithReh:                      {"YehWithHamzaAboveWithReh", []string{"\u0626\u0631"}, forms(0, 0, 0, 0xFC64)},
	YehWithHamzaAboveWithU:                        {"YehWithHamzaAboveWithU", []string{"\u0626\u06C7"}, forms(0xFBF0, 0, 0, 0xFBF1)},
	YehWithHamzaAboveWithWaw:                      {"YehWithHamzaAboveWithWaw", []string{"\u0626\u0648"}, forms(0xFBEE, 0, 0, 0xFBEF)},
	YehWithHamzaAboveWithYeh:                      {"YehWithHamzaAboveWithYeh", []string{"\u0626\u064A"}, forms(0xFC04, 0, 0, 0xFC69)},
	YehWithHamzaAboveWithYu:                       {"YehWithHamzaAboveWithYu", []string{"\u0626\u06C8"}, forms(0xFBF4, 0, 0, 0xFBF5)},
	YehWithHamzaAboveWithZain:                     {"YehWithHamzaAboveWithZain", []string{"\u0626\u0632"}, forms(0, 0, 0, 0xFC65)},
	YehWithHeh:                                    {"YehWithHeh", []string{"\u064A\u0647"}, forms(0, 0xFCDE, 0xFCF1, 0)},
	YehWithJeem:                                   {"YehWithJeem", []string{"\u064A\u062C"}, forms(0xFC55, 0xFCDA, 0, 0)},
	YehWithJeemWithYeh:                            {"YehWithJeemWithYeh", []string{"\u064A\u062C\u064A"}, forms(0, 0, 0, 0xFDAF)},
	YehWithKhah:                                   {"YehWithKhah", []string{"\u064A\u062E"}, forms(0xFC57, 0xFCDC, 0, 0)},
	YehWithMeem:                                   {"YehWithMeem", []string{"\u064A\u0645"}, forms(0xFC58, 0xFCDD, 0xFCF0, 0xFC93)},
	YehWithMeemWithMeem:                           {"YehWithMeemWithMeem", []string{"\u064A\u0645\u0645"}, forms(0, 0xFD9D, 0, 0xFD9C)},
	YehWithMeemWithYeh:                            {"YehWithMeemWithYeh", []string{"\u064A\u0645\u064A"}, forms(0, 0, 0, 0xFDB0)},
	YehWithNoon:                                   {"YehWithNoon", []string{"\u064A\u0646"}, forms(0, 0, 0, 0xFC94)},
	YehWithReh:                                    {"YehWithReh", []string{"\u064A\u0631"}, forms(0, 0, 0, 0xFC91)},
	YehWithYeh:                                    {"YehWithYeh", []string{"\u064A\u064A"}, forms(0xFC5A, 0, 0, 0xFC96)},
	YehWithZain:                                   {"YehWithZain", []string{"\u064A\u0632"}, forms(0, 0, 0, 0xFC92)},
	ZahWithMeem:                                   {"ZahWithMeem", []string{"\u0638\u0645"}, forms(0xFC28, 0xFCB9, 0xFD3B, 0)},
}
