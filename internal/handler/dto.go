package handler

type GenerateRequest struct {
	CompanyName string   `json:"company_name"`
	Keywords    []string `json:"keywords"`
	KeywordText string   `json:"keyword_text"`
	BatchSize   int      `json:"batch_size"`
	Debug       bool     `json:"debug"`
}

type PostResponse struct {
	Title    string   `json:"title"`
	PostBody string   `json:"post_body"`
	Comments []string `json:"comments"`
}

type GenerateResponse struct {
	Posts []PostResponse `json:"posts"`
	Total int            `json:"total"`
}
