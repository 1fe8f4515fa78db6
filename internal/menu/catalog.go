package menu

import (
	"fmt"
	"strconv"
	"time"

	"github.com/shopspring/decimal"
)

// Section groups catalog entries the way the printed menu does.
type Section struct {
	Title       string     `json:"title"`
	SubTitle    string     `json:"subTitle,omitempty"`
	Description string     `json:"description,omitempty"`
	Items       []MenuItem `json:"items"`
}

// Catalog is the full menu. It is built once at startup; the weekday
// specials (Rippchen-Tag, Schnitzel-Tag) are resolved against the clock
// passed to NewCatalog.
type Catalog struct {
	Sections []Section
	byID     map[int]MenuItem
}

func NewCatalog(now time.Time) *Catalog {
	c := &Catalog{
		Sections: []Section{
			{Title: "Pizza", Description: "Alle Pizzen mit Tomatensauce und Käse", Items: pizzaItems()},
			{Title: "Döner & Gyros", Items: donerItems(now)},
			{Title: "Pasta & Al Forno", Items: pastaItems()},
			{Title: "Schnitzel", Items: schnitzelItems(now)},
			{Title: "Hamburger", Items: burgerItems()},
			{Title: "Finger Food", Items: fingerFoodItems()},
			{Title: "Salate", SubTitle: "mit Dressing nach Wahl", Items: saladItems()},
			{Title: "Desserts", Items: dessertItems()},
			{Title: "Dips", Items: dipItems()},
			{Title: "Getränke", Items: drinkItems()},
		},
		byID: make(map[int]MenuItem),
	}
	for _, section := range c.Sections {
		for _, item := range section.Items {
			c.byID[item.ID] = item
		}
	}
	return c
}

// ItemByID returns the catalog entry and whether it exists.
func (c *Catalog) ItemByID(id int) (MenuItem, bool) {
	item, ok := c.byID[id]
	return item, ok
}

// Items returns every entry in menu order.
func (c *Catalog) Items() []MenuItem {
	var all []MenuItem
	for _, s := range c.Sections {
		all = append(all, s.Items...)
	}
	return all
}

func eur(v float64) decimal.Decimal {
	return decimal.NewFromFloat(v)
}

func pizzaSizes(medium, large, family, mega float64) []Size {
	return []Size{
		{Name: "Medium", Price: eur(medium), Description: "Ø ca. 26 cm"},
		{Name: "Large", Price: eur(large), Description: "Ø ca. 30 cm"},
		{Name: "Family", Price: eur(family), Description: "Ø ca. 40 cm"},
		{Name: "Mega", Price: eur(mega), Description: "Ø ca. 50 cm"},
	}
}

func drinkSizes(small float64) []Size {
	return []Size{
		{Name: "0,33 L", Price: eur(small), Description: "Klein"},
		{Name: "1,0 L", Price: eur(3.60), Description: "Groß"},
	}
}

func burgerSizes(base float64) []Size {
	return []Size{
		{Name: "125g", Price: eur(base), Description: "Standard Patty"},
		{Name: "250g", Price: eur(base + 2.00), Description: "Doppel Patty (+2€)"},
	}
}

func pizza(id, number int, name, description, allergens string, medium, large, family, mega float64) MenuItem {
	return MenuItem{
		ID:          id,
		Number:      strconv.Itoa(number),
		Name:        name,
		Description: description,
		Price:       eur(medium),
		Allergens:   allergens,
		Sizes:       pizzaSizes(medium, large, family, mega),
		Category:    CategoryPizza,
	}
}

func pizzaItems() []MenuItem {
	items := []MenuItem{
		{
			ID: 501, Number: "0", Name: "Wunsch Pizza",
			Description: "mit 4 Zutaten nach Wahl",
			Price:       eur(9.90), Allergens: "1,2,3/A,C",
			Sizes:    pizzaSizes(9.90, 11.90, 21.90, 30.90),
			Category: CategoryWunschPizza,
		},
		pizza(502, 1, "Margherita", "", "1,2,3/A,C", 8.90, 9.90, 17.90, 26.90),
		pizza(503, 2, "Salami", "mit Rindersalami", "1,2,3,4/A,C", 9.90, 11.90, 18.90, 28.90),
		pizza(504, 3, "Schinken", "mit Formfleisch-Vorderschinken", "1,2,3,4/A,C", 9.90, 11.90, 18.90, 28.90),
		pizza(505, 4, "Bomba", "mit Rindersalami und Peperoni (scharf)", "1,2,3,4/A,C", 9.90, 11.90, 18.90, 28.90),
		pizza(506, 5, "Sucuk", "mit Knoblauchwurst, Tomaten und Zwiebeln", "1,2,3,4/A,C,F", 9.90, 11.90, 18.90, 28.90),
		pizza(507, 6, "Casa", "mit Rindersalami, fr. Champignons und Paprika", "1,2,3,4/A,C", 9.90, 11.90, 18.90, 28.90),
		pizza(508, 7, "Mais", "mit Formfleisch-Vorderschinken, Mais und Sauce Hollandaise", "1,2,3,4/A,C,F,G", 9.90, 11.90, 18.90, 28.90),
		pizza(509, 8, "Monopoly", "mit Formfleisch-Vorderschinken, Rindersalami, fr. Champignons und Paprika", "1,2,3,4/A,C", 9.90, 11.90, 18.90, 28.90),
		pizza(510, 9, "Hawaii", "mit Formfleisch-Vorderschinken und Ananas", "1,2,3,4/A,C", 9.90, 11.90, 18.90, 28.90),
		pizza(511, 10, "Parma", "mit Original Parmaschinken, Tomaten, Mozzarella, Rucola", "1,2,3,4/A,C", 10.90, 12.90, 21.90, 30.90),
		pizza(512, 11, "Italia", "mit Formfleisch-Vorderschinken, Rindersalami, fr. Champignons", "1,2,3,4/A,C", 9.90, 11.90, 18.90, 28.90),
		pizza(513, 12, "Chilli-Cheese", "Chilli-Cheese Sauce, Sucuk, Jalapenos und Zwiebeln", "1,2,3,4/A,C,F", 9.90, 11.90, 19.90, 29.90),
		pizza(514, 13, "Gyros", "mit Gyros und Zwiebeln", "1,2,3,4/A,C,G", 9.90, 11.90, 18.90, 28.90),
		pizza(515, 14, "Hollandaise", "mit Hähnchenbrust, Jalapenos und Sauce Hollandaise", "1,2,3,4/A,C,F,G", 10.90, 12.90, 20.90, 30.90),
		pizza(516, 15, "Polo", "mit Hähnchenbrust, Sucuk, Broccoli, Paprika", "1,2,3,4/A,C,F,G", 10.90, 12.90, 20.90, 30.90),
		pizza(517, 16, "Palermo", "mit Hähnchenbrust, fr. Champignons und Paprika, Jalapenos und Sauce Hollandaise", "1,2,3,4/A,C,F,G", 10.90, 12.90, 20.90, 30.90),
		pizza(518, 17, "Desperado", "mit Hähnchenbrust, fr. Paprika, Zwiebeln und Sauce Hollandaise", "1,2,3,4/A,C,F,G", 10.90, 12.90, 20.90, 30.90),
		pizza(519, 18, "Tonno", "mit Thunfisch und Zwiebeln", "1,2,3/A,C,H", 9.90, 11.90, 18.90, 28.90),
		pizza(520, 19, "Shrimps", "mit Shrimps und Knoblauch", "1,2,3/A,C,D", 10.90, 13.90, 21.90, 30.90),
		pizza(521, 20, "Frutti di Mare", "mit Meeresfrüchten und Knoblauch", "1,2,3/A,C,D", 10.90, 13.90, 21.90, 30.90),
		pizza(522, 21, "Funghi", "mit fr.Champignons", "1,2,3/A,C", 9.90, 11.90, 18.90, 28.90),
		pizza(523, 22, "Vier Jahreszeiten", "mit fr.Champignons, Paprika, Tomaten, Artischocken", "1,2,3/A,C", 9.90, 11.90, 18.90, 28.90),
		pizza(524, 23, "Spinat", "mit Spinat, Hirtenkäse°, Knoblauch und Zwiebeln", "1,2,3/A,C", 9.90, 11.90, 18.90, 28.90),
		pizza(525, 24, "Quattro Formaggi", "mit Mozzarella°, Gorgonzola°, Hirtenkäse° und Edamer°", "1,2,3/A,C", 9.90, 11.90, 18.90, 28.90),
		pizza(526, 25, "Roma", "mit Broccoli, fr.Paprika und Mais", "1,2,3/A,C", 9.90, 11.90, 18.90, 28.90),
		pizza(527, 26, "Fitness", "mit fr.Tomaten, Mozzarella°, Rucola, Mais", "1,2,3/A,C", 9.90, 11.90, 18.90, 28.90),
		pizza(528, 27, "Vegetarisch", "mit Broccoli, Spinat, Milden Peperoni²,³", "1,2,3/A,C", 9.90, 11.90, 18.90, 28.90),
	}
	return items
}

// isRippchenTag reports the Wednesday spareribs special.
func isRippchenTag(now time.Time) bool {
	return now.Weekday() == time.Wednesday
}

// isSchnitzelTag reports the Thursday schnitzel special.
func isSchnitzelTag(now time.Time) bool {
	return now.Weekday() == time.Thursday
}

func donerItems(now time.Time) []MenuItem {
	ribs := MenuItem{
		ID: 84, Number: "84", Name: "Spareribs (Rippchen 450g)",
		Description: "mit BBQ Sauce, Pommes und Krautsalat",
		Price:       eur(15.50), Allergens: "1,2,3,4/A,C,F,G",
		Category: CategorySimple,
	}
	if isRippchenTag(now) {
		ribs.Name = "🍖 Spareribs (Rippchen 450g) - RIPPCHEN-TAG!"
		ribs.Description = "mit BBQ Sauce, Pommes und Krautsalat - MITTWOCH SPEZIAL!"
		ribs.Price = eur(13.00)
	}

	return []MenuItem{
		{
			ID: 80, Number: "80", Name: "Gyros Teller",
			Description: "mit Krautsalat, dazu Pommes",
			Price:       eur(13.70), Allergens: "1,2,3,4/A,C,F,G",
			Category: CategorySauced,
		},
		// Gyros Hollandaise and Gyros Topf come pre-sauced, so unlike the
		// other Spezialitäten they are ordered without any choices.
		{
			ID: 81, Number: "81", Name: "Gyros Hollandaise",
			Description: "in Sauce Hollandaise mit Käse überbacken",
			Price:       eur(14.00), Allergens: "1,2,3,4/A,C,F,G",
			Category: CategorySimple,
		},
		{
			ID: 82, Number: "82", Name: "Gyros Topf",
			Description: "mit fr. Champignons in Sauce Hollandaise mit Käse überbacken",
			Price:       eur(14.50), Allergens: "1,2,3,4/A,C,F,G",
			Category: CategorySimple,
		},
		{
			ID: 83, Number: "83", Name: "Gyros Box",
			Description: "mit Gyros, Pommes und Salat",
			Price:       eur(7.90), Allergens: "1,2,3,4/A,C,F,G",
			Category: CategorySauced,
		},
		ribs,
		{
			ID: 85, Number: "85", Name: "Currywurst",
			Description: "mit Curry Sauce und Pommes",
			Price:       eur(9.90), Allergens: "1,2,3,4/A,C,F",
			Category: CategorySimple,
		},
	}
}

func pastaDish(id, number int, name, description string, price float64) MenuItem {
	return MenuItem{
		ID: id, Number: strconv.Itoa(number), Name: name,
		Description: description, Price: eur(price),
		Category: CategoryPasta,
	}
}

func bakedDish(id, number int, name, description string, price float64) MenuItem {
	return MenuItem{
		ID: id, Number: strconv.Itoa(number), Name: name,
		Description: description, Price: eur(price),
		Category: CategorySimple,
	}
}

func pastaItems() []MenuItem {
	return []MenuItem{
		pastaDish(534, 50, "Pasta Schinken-Sahnesauce", "Pasta Schinken-Sahnesauce", 12.00),
		pastaDish(535, 51, "Pasta Carbonara", "in Schinken-Sahnesauce mit Eigelb", 12.00),
		pastaDish(536, 52, "Pasta Spinat", "in Gorgonzolasauce", 12.00),
		pastaDish(537, 53, "Pasta Hähnchen-Brust", "in Sahnesauce, Milde Peperoni und Zwiebeln", 13.00),
		pastaDish(538, 54, "Al Quattro Formaggi", "mit Vier Käsesorten, Sahnesauce und Nudelsorte nach Wahl", 13.00),
		pastaDish(539, 55, "Maccheroni Gyros", "in Sauce Hollandaise", 13.00),
		bakedDish(540, 56, "Kartoffel-Gemüse Auflauf", "mit Broccoli, fr.Paprika und Mais in Sahnesauce", 13.00),
		bakedDish(541, 57, "Kartoffel-Hähnchen-Brust Auflauf", "mit Broccoli und Mais in Sahnesauce", 14.00),
		bakedDish(542, 58, "Lasagne Gemüse", "in Sahnesauce und Tomatensauce", 13.00),
		bakedDish(543, 59, "Lasagne Rind", "in Sahnesauce und Tomatensauce", 14.00),
		bakedDish(544, 60, "Spätzle Quattro Formaggi", "mit Vier Käsesorten in Sahnesauce", 14.00),
		bakedDish(545, 61, "Spätzle Hähnchen", "mit Hirtenkäse in Sahnesauce", 14.00),
	}
}

func schnitzelItems(now time.Time) []MenuItem {
	wiener := bakedDish(546, 70, "Schnitzel Wiener Art", "mit Zitronenscheiben und Preiselbeeren", 11.00)
	jaeger := bakedDish(547, 71, "Schnitzel Jäger Art", "mit Jägersauce", 12.90)
	hollandaise := bakedDish(548, 72, "Hollandaiseschnitzel", "in Sauce Hollandaise", 12.90)

	if isSchnitzelTag(now) {
		wiener.Description += " - DONNERSTAG SPEZIAL!"
		jaeger.Name = "🍖 Schnitzel Jäger Art - SCHNITZEL-TAG!"
		jaeger.Description += " - DONNERSTAG SPEZIAL!"
		jaeger.Price = eur(11.00)
		hollandaise.Name = "🍖 Hollandaiseschnitzel - SCHNITZEL-TAG!"
		hollandaise.Description = "in Sauce Hollandaise - DONNERSTAG SPEZIAL!"
		hollandaise.Price = eur(11.00)
	}

	return []MenuItem{wiener, jaeger, hollandaise}
}

func burger(id, number int, name, description, allergens string, base float64) MenuItem {
	return MenuItem{
		ID: id, Number: strconv.Itoa(number), Name: name,
		Description: description, Price: eur(base), Allergens: allergens,
		Sizes:    burgerSizes(base),
		Category: CategorySized,
	}
}

func burgerItems() []MenuItem {
	return []MenuItem{
		burger(529, 40, "Cheese Burger", "mit Burgersauce und Cheddar°", "A,C", 12.00),
		burger(530, 41, "Texas Bacon Burger", "mit Cheddar°, BBQ sauce, Bacon, Zwiebeln", "A,C", 12.00),
		burger(531, 42, "Chilli Cheese Burger", "mit Chilli-Cheesesauce¹,³,⁴, Jalapenos und Cheddar°", "A,C", 12.00),
		burger(532, 43, "Crispy Chicken Burger", "mit %100 Chicken-Patty, mayonnaise und Burgersauce", "", 12.00),
		burger(533, 44, "Crispy Chilli-Chicken Burger", "mit %100 Chicken-Patty, Chilli-Cheesesauce¹,³,⁴, Cheddar° und Jalapenos", "", 12.00),
	}
}

func simpleNumbered(id int, number, name, description string, price float64) MenuItem {
	return MenuItem{
		ID: id, Number: number, Name: name, Description: description,
		Price: eur(price), Category: CategorySimple,
	}
}

func fingerFoodItems() []MenuItem {
	return []MenuItem{
		simpleNumbered(550, "F1", "Mozzarella Stick", "6 Stk.", 6.20),
		simpleNumbered(551, "F2", "Chicken Nuggets", "8 Stk.", 6.00),
		simpleNumbered(552, "F3", "Crispy Chicken Fingers", "6 Stk.", 8.90),
		simpleNumbered(553, "F4", "Chili Cheese Nuggets", "8 Stk.", 7.00),
		simpleNumbered(554, "F5", "Pommes Frites", "", 4.50),
		simpleNumbered(555, "F6", "Twister Pommes", "", 5.00),
		simpleNumbered(556, "F7", "Wedges", "", 5.00),
		simpleNumbered(557, "F8", "Süßkartoffel", "", 5.50),
		simpleNumbered(558, "F9", "Onion Rings", "", 6.00),
		simpleNumbered(559, "F10", "Rosti", "4 Stk.", 5.90),
	}
}

func salad(id, number int, name, description string, price float64) MenuItem {
	return MenuItem{
		ID: id, Number: strconv.Itoa(number), Name: name,
		Description: description, Price: eur(price),
		Category: CategorySalad,
	}
}

func saladItems() []MenuItem {
	return []MenuItem{
		salad(568, 90, "Gebackene Camembert", "2 Stk. Mit Salat und Preiselbeeren", 10.90),
		salad(569, 91, "Fjord", "mit Räucherlachs, Gemischter Salat, Rosti und Meerrettich", 11.90),
		salad(570, 92, "Chefsalat", "mit Schinken und Käse", 10.90),
		salad(571, 93, "Thunfischsalat", "mit Thunfisch und Hirtenkäse", 10.90),
		salad(572, 94, "Tomaten Mozzarella", "mit fr.Tomaten, Mozzarella, Basilikum und Olivenöl", 10.90),
		salad(573, 95, "Gemischter Salat", "", 7.90),
	}
}

func dessertItems() []MenuItem {
	return []MenuItem{
		simpleNumbered(574, "D1", "Rote Grütze", "mit Vanillesauce", 4.90),
		simpleNumbered(575, "D2", "Milchreis", "mit Zimt und Zucker", 4.90),
		simpleNumbered(576, "D3", "Schokopudding", "mit Vanillesauce", 4.90),
		simpleNumbered(577, "D4", "Oreo Schokoladen Muffin", "", 3.90),
		simpleNumbered(578, "D5", "Milka Schokoladen Muffin", "", 3.90),
	}
}

func dipItems() []MenuItem {
	names := []string{"Mayo", "Ketchup", "Knobi", "Hollandaise", "Chilli", "BBQ"}
	items := make([]MenuItem, 0, len(names))
	for i, name := range names {
		id := 201 + i
		items = append(items, simpleNumbered(id, fmt.Sprintf("%d", id), name, "", 1.50))
	}
	return items
}

func softDrink(id int, name string) MenuItem {
	return MenuItem{
		ID: id, Number: "100", Name: name,
		Description: "Wählen Sie Ihre gewünschte Größe",
		Price:       eur(2.20),
		Sizes:       drinkSizes(2.20),
		Category:    CategorySized,
	}
}

func drinkItems() []MenuItem {
	return []MenuItem{
		softDrink(10, "Coca-Cola"),
		softDrink(11, "Coca-Cola Light"),
		softDrink(12, "Fanta Orange"),
		softDrink(13, "Sprite"),
		simpleNumbered(18, "101", "Capri-Sonne", "0,20 L", 1.00),
		{
			ID: 562, Number: "102", Name: "Becks oder Herrenhäuser",
			Description: "0,3 L", Price: eur(2.40),
			Category: CategoryBeer,
		},
		simpleNumbered(563, "103", "Chianti (Italienische Rotwein)", "0,7 L", 9.00),
		simpleNumbered(564, "104", "Merlot (Italienische Rotwein)", "1 L", 11.00),
		simpleNumbered(565, "105", "Suave (Italienischer Weißwein)", "0,7 L", 9.00),
		simpleNumbered(566, "106", "Chardonney (Italienische Weißwein)", "1 L", 11.00),
		simpleNumbered(567, "107", "Vodka Gorbatschow", "0,7 L", 16.00),
	}
}
