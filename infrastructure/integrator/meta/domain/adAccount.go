package metadomain

// AdAccountInfo é a resposta de /{act_id}?fields=id,name,account_status,currency,timezone_name
type AdAccountInfo struct {
	ID            string `json:"id"`
	AccountID     string `json:"account_id"`
	Name          string `json:"name"`
	AccountStatus int    `json:"account_status"`
	Currency      string `json:"currency"`
	TimezoneName  string `json:"timezone_name"`
}

// AdInsightDaily é um registro diário de /{act_id}/insights com time_increment=1.
// A Marketing API devolve os números como string.
type AdInsightDaily struct {
	AccountID   string `json:"account_id"`
	DateStart   string `json:"date_start"`
	DateStop    string `json:"date_stop"`
	Spend       string `json:"spend"`
	Impressions string `json:"impressions"`
	Clicks      string `json:"clicks"`
}

type AdInsightsResponse struct {
	Data   []AdInsightDaily `json:"data"`
	Paging *Paging          `json:"paging,omitempty"`
}

type Cursors struct {
	Before string `json:"before"`
	After  string `json:"after"`
}

type Paging struct {
	Cursors Cursors `json:"cursors"`
	Next    string  `json:"next,omitempty"`
}
