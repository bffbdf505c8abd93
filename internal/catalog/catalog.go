// Package catalog defines the static registry of resource categories:
// the fixed item list each category carries, the attribute shape of its
// records, and the size vocabularies for apparel, boots and gloves.
// The registry is immutable for the lifetime of the process.
package catalog

// Shape discriminates the attribute record a category's items carry.
type Shape int

const (
	// ShapeQuantity tracks a unit count plus free-text notes.
	ShapeQuantity Shape = iota
	// ShapeCost tracks an estimated cost plus free-text notes.
	ShapeCost
	// ShapeSize tracks a per-size quantity bucket plus free-text notes.
	ShapeSize
)

// Category is one resource category: a payload key, a report table title,
// the attribute shape, and the ordered catalog item list.
type Category struct {
	ID      string   // payload key, e.g. "eppEquipo"
	Title   string   // report table title, e.g. "EPP - Equipo"
	Section string   // wizard section that edits this category
	Shape   Shape
	Items   []string // fixed catalog, in display and report order
	Sizes   []string // size vocabulary, only for ShapeSize
}

// Wizard section ids that own catalog categories.
const (
	SectionEPP       = "epp"
	SectionTools     = "tools"
	SectionLogistics = "logistics"
	SectionFood      = "food"
	SectionCamp      = "camp"
	SectionHygiene   = "hygiene"
	SectionMeds      = "meds"
	SectionAnimals   = "animals"
)

// ApparelSizes is the bucket vocabulary for garments sized XS through XL.
// Keys are lowercase to match the payload field names.
var ApparelSizes = []string{"xs", "s", "m", "l", "xl"}

// BootSizes is the bucket vocabulary for forestry boots. "otra" is the
// free-form bucket paired with an OtherLabel on the record.
var BootSizes = []string{"37", "38", "39", "40", "41", "42", "43", "otra"}

// GloveSizes is the bucket vocabulary for gloves, "otra" included.
var GloveSizes = []string{"XS", "S", "M", "L", "XL", "XXL", "otra"}

var categories = []Category{
	{
		ID:      "eppRopa",
		Title:   "EPP - Ropa",
		Section: SectionEPP,
		Shape:   ShapeSize,
		Items:   []string{"Camisa Forestal", "Pantalón Forestal", "Overol FR"},
		Sizes:   ApparelSizes,
	},
	{
		ID:      "eppEquipo",
		Title:   "EPP - Equipo",
		Section: SectionEPP,
		Shape:   ShapeQuantity,
		Items: []string{
			"Esclavina", "Linterna", "Antiparra", "Casco Forestal Ala Ancha",
			"Máscara para Polvo y Partículas", "Máscara Media Cara", "Barbijos",
		},
	},
	{
		ID:      "herramientas",
		Title:   "Herramientas",
		Section: SectionTools,
		Shape:   ShapeQuantity,
		Items: []string{
			"Linternas de Cabeza", "Pilas AA", "Pilas AAA", "Azadón",
			"Pala con Mango de Fibra", "Rastrillo Mango de Fibra",
			"McLeod Mango de Fibra", "Batefuego", "Gorgui",
			"Pulasky con Mango de Fibra", "Quemador de Goteo",
			"Mochila Forestal", "Escobeta de Alambre",
		},
	},
	{
		ID:      "logisticaRepuestos",
		Title:   "Logística",
		Section: SectionLogistics,
		Shape:   ShapeCost,
		Items: []string{
			"Gasolina", "Diésel", "Amortiguadores", "Prensa Disco",
			"Rectificación de Frenos", "Llantas", "Aceite de Motor",
			"Grasa", "Cambio de Aceite", "Otro Tipo de Arreglo",
		},
	},
	{
		ID:      "alimentacion",
		Title:   "Alimentación",
		Section: SectionFood,
		Shape:   ShapeQuantity,
		Items: []string{
			"Alimentos y Bebidas", "Agua", "Rehidratantes", "Barras Energizantes",
			"Lata de Atún", "Lata de Frejol", "Lata de Viandada", "Lata de Chorizos",
			"Refresco en Sobres", "Leche Polvo", "Frutos Secos",
			"Pastillas de Menta o Dulces", "Alimentos No Perecederos",
		},
	},
	{
		ID:      "logisticaCampo",
		Title:   "Equipo de Campo",
		Section: SectionCamp,
		Shape:   ShapeQuantity,
		Items: []string{
			"Carpas", "Colchonetas", "Mochilas Personales", "Mantas",
			"Cuerdas", "Radio Comunicadores", "Baterías Portátiles",
		},
	},
	{
		ID:      "limpiezaPersonal",
		Title:   "Limpieza Personal",
		Section: SectionHygiene,
		Shape:   ShapeQuantity,
		Items: []string{
			"Papel Higiénico", "Cepillos de Dientes", "Jabón",
			"Pasta Dental", "Toallas", "Alcohol en Gel",
		},
	},
	{
		ID:      "limpiezaGeneral",
		Title:   "Limpieza General",
		Section: SectionHygiene,
		Shape:   ShapeQuantity,
		Items: []string{
			"Detergente", "Escobas", "Trapeadores",
			"Bolsas de Basura", "Lavandina", "Desinfectante",
		},
	},
	{
		ID:      "medicamentos",
		Title:   "Medicamentos",
		Section: SectionMeds,
		Shape:   ShapeQuantity,
		Items: []string{
			"Paracetamol", "Ibuprofeno", "Antibióticos", "Suero Oral",
			"Gasas", "Vendas", "Alcohol", "Yodo", "Curitas",
		},
	},
	{
		ID:      "rescateAnimal",
		Title:   "Rescate Animal",
		Section: SectionAnimals,
		Shape:   ShapeQuantity,
		Items: []string{
			"Jaulas de Transporte", "Collares", "Comida para Mascotas",
			"Guantes Especiales", "Medicamentos Veterinarios",
		},
	},
}

// Categories returns all catalog categories in report order.
// The returned slice is shared; callers must not mutate it.
func Categories() []Category {
	return categories
}

// ByID looks up a category by its payload key.
func ByID(id string) (Category, bool) {
	for _, c := range categories {
		if c.ID == id {
			return c, true
		}
	}
	return Category{}, false
}

// BySection returns the categories edited by a wizard section, in order.
func BySection(section string) []Category {
	var out []Category
	for _, c := range categories {
		if c.Section == section {
			out = append(out, c)
		}
	}
	return out
}
