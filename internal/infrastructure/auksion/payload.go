package auksion

// зафиксированное апстримом значение, без него /lots отвечает пустой выдачей
const payloadChecksum = "d7431a0a032c91d10d97ceac59425f9d"

const searchPerPage = 50

// lotsRequest — тело POST /lots. Апстрим требует полный набор полей,
// даже нейтральных: отсутствие любого из них меняет выдачу.
type lotsRequest struct {
	SortType               int     `json:"sort_type"`
	ConfiscantGroupsID     *string `json:"confiscant_groups_id"`
	ConfiscantCategoriesID *int    `json:"confiscant_categories_id"`
	RegionsID              *int    `json:"regions_id"`
	AreasID                *int    `json:"areas_id"`
	AuctionType            int     `json:"auction_type"`
	CurrentPage            int     `json:"current_page"`
	PerPage                int     `json:"per_page"`
	DateFrom               *string `json:"date_from"`
	DateTo                 *string `json:"date_to"`
	DynamicFilters         []any   `json:"dynamic_filters"`
	ExecOrderType          int     `json:"exec_order_type"`
	FilteredAuctionStatus  int     `json:"filtered_auction_status"`
	FinishedAuctionStatus  int     `json:"finished_auction_status"`
	Hashtag                string  `json:"hashtag"`
	IsOwnership            int     `json:"is_ownership"`
	IsTermOrder            int     `json:"is_term_order"`
	LotNumber              string  `json:"lot_number"`
	LotType                int     `json:"lot_type"`
	MahallasID             *int    `json:"mahallas_id"`
	Orderby                int     `json:"orderby_"`
	Address                string  `json:"address"`
	ZzMD5                  string  `json:"zz_md5"`
}

func baseLotsRequest() lotsRequest {
	return lotsRequest{
		SortType:       1,
		CurrentPage:    1,
		DynamicFilters: []any{},
		IsOwnership:    -1,
		IsTermOrder:    -1,
		ZzMD5:          payloadChecksum,
	}
}

// newListRequest собирает запрос листинга категории. regionID == 0
// означает все регионы (в json уходит null).
func newListRequest(groupID string, categoryID, regionID, page, perPage int) lotsRequest {
	req := baseLotsRequest()
	req.ConfiscantGroupsID = &groupID
	req.ConfiscantCategoriesID = &categoryID
	req.CurrentPage = page
	req.PerPage = perPage

	if regionID != 0 {
		req.RegionsID = &regionID
	}

	return req
}

// newSearchRequest ищет по hashtag и адресу одновременно.
func newSearchRequest(query string) lotsRequest {
	req := baseLotsRequest()
	req.PerPage = searchPerPage
	req.Hashtag = query
	req.Address = query

	return req
}
