package constant

// MaterialUnit is the unit a material is purchased and allocated in.
type MaterialUnit string

const (
	MaterialUnitKilogram    MaterialUnit = "kg"
	MaterialUnitTonne       MaterialUnit = "ton"
	MaterialUnitPiece       MaterialUnit = "pc"
	MaterialUnitLiter       MaterialUnit = "l"
	MaterialUnitMeter       MaterialUnit = "m"
	MaterialUnitSquareMeter MaterialUnit = "m2"
	MaterialUnitCubicMeter  MaterialUnit = "m3"
	MaterialUnitBag         MaterialUnit = "bag"
)
