package party

import "sort"

// ItemStack is one inventory entry. Value carries the food/medical restore
// amount, or for weapons the durability the stack was shelved with. An
// equipped weapon's live durability is tracked on the Character instead.
type ItemStack struct {
	Name     string  `json:"name"`
	Value    float64 `json:"value"`
	Quantity int     `json:"quantity"`
}

type Inventory struct {
	items map[string]*ItemStack
	order []string
}

func NewInventory() *Inventory {
	return &Inventory{items: map[string]*ItemStack{}}
}

// Add increments the stack for name, creating it with the given value when
// absent. Repeated adds keep the value the stack was created with.
func (inv *Inventory) Add(name string, value float64) {
	if name == "" {
		return
	}
	if stack, ok := inv.items[name]; ok {
		stack.Quantity++
		return
	}
	inv.items[name] = &ItemStack{Name: name, Value: value, Quantity: 1}
	inv.order = append(inv.order, name)
}

func (inv *Inventory) AddFood(f FoodDef) { inv.Add(f.Name, f.Restore) }

func (inv *Inventory) AddMedical(m MedicalDef) { inv.Add(m.Name, float64(m.Restore)) }

// AddWeapon shelves a freshly looted weapon at full durability.
func (inv *Inventory) AddWeapon(w WeaponDef) { inv.Add(w.Name, float64(w.Durability)) }

// Remove decrements a stack, deleting it at zero. It reports whether the
// item was present at all.
func (inv *Inventory) Remove(name string) bool {
	stack, ok := inv.items[name]
	if !ok {
		return false
	}
	stack.Quantity--
	if stack.Quantity <= 0 {
		delete(inv.items, name)
		for i, n := range inv.order {
			if n == name {
				inv.order = append(inv.order[:i], inv.order[i+1:]...)
				break
			}
		}
	}
	return true
}

func (inv *Inventory) Get(name string) (ItemStack, bool) {
	if stack, ok := inv.items[name]; ok {
		return *stack, true
	}
	return ItemStack{}, false
}

func (inv *Inventory) Len() int {
	total := 0
	for _, stack := range inv.items {
		total += stack.Quantity
	}
	return total
}

// Items returns stacks in insertion order.
func (inv *Inventory) Items() []ItemStack {
	out := make([]ItemStack, 0, len(inv.order))
	for _, name := range inv.order {
		out = append(out, *inv.items[name])
	}
	return out
}

type Categorized struct {
	Food    []ItemStack
	Medical []ItemStack
	Weapons []ItemStack
}

// ByCategory partitions stacks by catalog membership and sorts each category
// by descending effectiveness.
func (inv *Inventory) ByCategory() Categorized {
	var out Categorized
	for _, name := range inv.order {
		stack := *inv.items[name]
		if _, ok := FoodByName(name); ok {
			out.Food = append(out.Food, stack)
		} else if _, ok := MedicalByName(name); ok {
			out.Medical = append(out.Medical, stack)
		} else if _, _, ok := WeaponByName(name); ok {
			out.Weapons = append(out.Weapons, stack)
		}
	}
	sort.SliceStable(out.Food, func(i, j int) bool {
		fi, _ := FoodByName(out.Food[i].Name)
		fj, _ := FoodByName(out.Food[j].Name)
		return fi.Restore > fj.Restore
	})
	sort.SliceStable(out.Medical, func(i, j int) bool {
		mi, _ := MedicalByName(out.Medical[i].Name)
		mj, _ := MedicalByName(out.Medical[j].Name)
		return mi.Restore > mj.Restore
	})
	sort.SliceStable(out.Weapons, func(i, j int) bool {
		wi, _, _ := WeaponByName(out.Weapons[i].Name)
		wj, _, _ := WeaponByName(out.Weapons[j].Name)
		return wi.Damage > wj.Damage
	})
	return out
}
