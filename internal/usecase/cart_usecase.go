package usecase

import (
	"errors"

	"github.com/DRSN-tech/shopping-cart/internal/domain"
	"github.com/DRSN-tech/shopping-cart/pkg/e"
	"github.com/DRSN-tech/shopping-cart/pkg/logger"
)

// CartUseCase реализует операции над корзиной одной интерактивной сессии.
type CartUseCase struct {
	cartRepo CartRepository
	logger   logger.Logger
}

func NewCartUC(cartRepo CartRepository, logger logger.Logger) *CartUseCase {
	return &CartUseCase{
		cartRepo: cartRepo,
		logger:   logger,
	}
}

// AddItem создаёт проверенный товар и добавляет его в конец корзины.
func (c *CartUseCase) AddItem(req *AddItemReq) error {
	const op = "CartUseCase.AddItem"

	item, err := domain.NewItem(req.Name, req.Description, req.Price, req.Quantity)
	if err != nil {
		c.logger.Warnf("item rejected: %v", e.Wrap(op, err))
		return e.Wrap(op, err)
	}

	c.cartRepo.Add(*item)
	c.logger.Debugf("item added: name=%s quantity=%d price=%s", item.Name, item.Quantity, item.Price)

	return nil
}

// RemoveItem удаляет товар по имени. Если товара нет, возвращается ошибка вида e.ErrNotFound.
func (c *CartUseCase) RemoveItem(req *RemoveItemReq) error {
	const op = "CartUseCase.RemoveItem"

	if err := c.cartRepo.Remove(req.Name); err != nil {
		c.logger.Infof("nothing removed: %v", e.Wrap(op, err))
		return e.Wrap(op, err)
	}

	c.logger.Debugf("item removed: name=%s", req.Name)
	return nil
}

// ModifyItem применяет патч к товару. Пустой патч для найденного товара ничего не меняет.
func (c *CartUseCase) ModifyItem(req *ModifyItemReq) error {
	const op = "CartUseCase.ModifyItem"

	if err := c.cartRepo.Modify(req.Name, req.Patch); err != nil {
		if errors.Is(err, e.ErrValidation) {
			c.logger.Warnf("modification rejected: %v", e.Wrap(op, err))
		} else {
			c.logger.Infof("nothing modified: %v", e.Wrap(op, err))
		}
		return e.Wrap(op, err)
	}

	if req.Patch.IsEmpty() {
		c.logger.Debugf("modify with empty patch: name=%s", req.Name)
	}
	return nil
}

// GetCartSummary возвращает заголовок, количество единиц, строки стоимости и итог.
func (c *CartUseCase) GetCartSummary() *CartSummaryRes {
	items := c.cartRepo.Items()

	lines := make([]string, 0, len(items))
	for _, it := range items {
		lines = append(lines, it.CostLine())
	}

	return NewCartSummaryRes(c.cartRepo.Header(), c.cartRepo.ItemCount(), lines, c.cartRepo.TotalCost())
}

// GetItemDescriptions возвращает заголовок и строки описаний.
func (c *CartUseCase) GetItemDescriptions() *ItemDescriptionsRes {
	items := c.cartRepo.Items()

	lines := make([]string, 0, len(items))
	for _, it := range items {
		lines = append(lines, it.DescriptionLine())
	}

	return NewItemDescriptionsRes(c.cartRepo.Header(), lines)
}
