package usecase

type CartUC interface {
	AddItem(req *AddItemReq) error
	RemoveItem(req *RemoveItemReq) error
	ModifyItem(req *ModifyItemReq) error
	GetCartSummary() *CartSummaryRes
	GetItemDescriptions() *ItemDescriptionsRes
}
