package constants

const (
	MAX_PAGE_SIZE             = 100
	DEFAULT_ASSETS_LIMIT      = 20
	DEFAULT_LISTINGS_LIMIT    = 20
	DEFAULT_OFFERS_LIMIT      = 20
	DEFAULT_COLLECTIONS_LIMIT = 20
	DEFAULT_TX_LIMIT          = 20
	DEFAULT_TRENDING_LIMIT    = 10
	MAX_TRENDING_LIMIT        = 50
	MAX_NAME_LENGTH           = 200
	MAX_DESCRIPTION_LENGTH    = 5000
	IDEMPOTENCY_KEY_HEADER    = "Idempotency-Key"
	MAX_IDEMPOTENCY_KEY_LEN   = 128
)
