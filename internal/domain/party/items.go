package party

// Item catalogs. Category membership is the catalog a name resolves in,
// not a lookup across untyped tuples.

type FoodDef struct {
	Name    string  `json:"name"`
	Restore float64 `json:"restore"`
}

type MedicalDef struct {
	Name    string `json:"name"`
	Restore int    `json:"restore"`
	Cures   bool   `json:"cures"`
}

type WeaponDef struct {
	Name       string `json:"name"`
	Damage     int    `json:"damage"`
	Durability int    `json:"durability"`
}

var Foods = []FoodDef{
	{Name: "berries", Restore: 1},
	{Name: "chocolate bar", Restore: 1},
	{Name: "canned beans", Restore: 1.5},
	{Name: "jerky", Restore: 2},
	{Name: "smoked fish", Restore: 2.5},
	{Name: "ration pack", Restore: 3},
}

var Medicals = []MedicalDef{
	{Name: "bandage", Restore: 1},
	{Name: "painkillers", Restore: 2},
	{Name: "antibiotics", Restore: 2, Cures: true},
	{Name: "first aid kit", Restore: 3, Cures: true},
}

// Weapons[0] is always bare fists; a character's weapon index points here.
var Weapons = []WeaponDef{
	{Name: "fists", Damage: 1, Durability: 99},
	{Name: "stick", Damage: 2, Durability: 4},
	{Name: "knife", Damage: 3, Durability: 6},
	{Name: "bat", Damage: 4, Durability: 8},
	{Name: "machete", Damage: 5, Durability: 10},
}

const FistsIndex = 0

func FoodByName(name string) (FoodDef, bool) {
	for _, f := range Foods {
		if f.Name == name {
			return f, true
		}
	}
	return FoodDef{}, false
}

func MedicalByName(name string) (MedicalDef, bool) {
	for _, m := range Medicals {
		if m.Name == name {
			return m, true
		}
	}
	return MedicalDef{}, false
}

func WeaponByName(name string) (WeaponDef, int, bool) {
	for i, w := range Weapons {
		if w.Name == name {
			return w, i, true
		}
	}
	return WeaponDef{}, 0, false
}
