// Package anvil turns a settings snapshot into the costs, multipliers and
// thresholds an anvil transaction consumes.
package anvil

//go:generate go run github.com/dmarkham/enumer -type=Rarity -trimprefix=Rarity -transform=snake-upper -text -output=rarity_enumer.go
//go:generate go run github.com/dmarkham/enumer -type=Operation -trimprefix=Operation -transform=snake-upper -text -output=operation_enumer.go

// Rarity is the rarity category of an enchantment.
type Rarity int

const (
	RarityCommon Rarity = iota
	RarityUncommon
	RarityRare
	RarityVeryRare
)

// Operation is what an anvil use did to the item on the left slot.
type Operation int

const (
	// OperationRename only changed the item's name.
	OperationRename Operation = iota

	// OperationRepair restored durability with material or another item.
	OperationRepair

	// OperationEnchant added enchantments to the item.
	OperationEnchant

	// OperationCombineBooks merged two enchanted books.
	OperationCombineBooks
)
