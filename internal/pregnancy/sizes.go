package pregnancy

// SizeEntry is one row of the fetal size reference table
type SizeEntry struct {
	Week        int    `json:"week"`
	LengthMm    int    `json:"length_mm"`
	Description string `json:"description"`
}

// sizeTable maps gestational weeks to approximate fetal length and a
// familiar-object comparison. Rows are ascending by week; lookups pick the
// last row whose week does not exceed the requested week.
var sizeTable = []SizeEntry{
	{4, 2, "poppy seed"},
	{5, 3, "sesame seed"},
	{6, 6, "lentil"},
	{7, 13, "blueberry"},
	{8, 16, "kidney bean"},
	{9, 23, "grape"},
	{10, 31, "kumquat"},
	{11, 41, "fig"},
	{12, 54, "lime"},
	{13, 74, "pea pod"},
	{14, 87, "lemon"},
	{15, 98, "apple"},
	{16, 116, "avocado"},
	{17, 133, "turnip"},
	{18, 144, "bell pepper"},
	{19, 152, "heirloom tomato"},
	{20, 166, "banana"},
	{21, 267, "carrot"},
	{22, 278, "spaghetti squash"},
	{23, 289, "large mango"},
	{24, 300, "ear of corn"},
	{25, 346, "rutabaga"},
	{26, 356, "scallion"},
	{27, 366, "cauliflower"},
	{28, 376, "eggplant"},
	{29, 386, "butternut squash"},
	{30, 399, "cabbage"},
	{31, 411, "coconut"},
	{32, 422, "jicama"},
	{33, 432, "pineapple"},
	{34, 450, "cantaloupe"},
	{35, 462, "honeydew melon"},
	{36, 473, "romaine lettuce"},
	{37, 486, "swiss chard"},
	{38, 498, "leek"},
	{39, 507, "mini watermelon"},
	{40, 516, "small pumpkin"},
}

// LookupBabySize returns the size entry for a gestational week. Weeks below
// the table floor clamp to the first row; weeks past 40 return the last row.
func LookupBabySize(week int) SizeEntry {
	entry := sizeTable[0]
	for _, row := range sizeTable {
		if row.Week > week {
			break
		}
		entry = row
	}
	return entry
}
