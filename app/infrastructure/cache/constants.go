package cache

const (
	CacheVersion = "v1"

	// Every product read shares this namespace so a single pattern delete
	// evicts all derived views along with the entity entries.
	ProductNamespace        = CacheVersion + ":products:"
	ProductNamespacePattern = ProductNamespace + "*"

	ProductAllKey                 = ProductNamespace + "all"
	ProductByIDKeyPattern         = ProductNamespace + "id:%s"
	ProductByInventoryKeyPattern  = ProductNamespace + "inventory:%s"
	ProductByPriceRangeKeyPattern = ProductNamespace + "price:range:%s-%s"
	ProductByPriceGteKeyPattern   = ProductNamespace + "price:gte:%s"
	ProductByPriceLteKeyPattern   = ProductNamespace + "price:lte:%s"
	ProductByQuantityKeyPattern   = ProductNamespace + "quantity:%d"
	ProductByCategoryKeyPattern   = ProductNamespace + "category:%s"

	// Lock keys live outside the product namespace so namespace eviction
	// never releases a held mutex.
	ProductUpdateLockKeyPattern = CacheVersion + ":locks:products:%s"
)
