package schemas

// CategoryData is a news category attached to an article.
type CategoryData struct {
	Type     string `json:"TYPE"`
	ID       int32  `json:"ID"`
	Name     string `json:"NAME"`
	Category string `json:"CATEGORY"`
}

// NewsLatestArticle is a published article with its source and categories.
type NewsLatestArticle struct {
	Type         string         `json:"TYPE"`
	ID           int32          `json:"ID"`
	GUID         string         `json:"GUID"`
	PublishedOn  int64          `json:"PUBLISHED_ON"`
	ImageURL     string         `json:"IMAGE_URL"`
	Title        string         `json:"TITLE"`
	URL          string         `json:"URL"`
	SourceID     int32          `json:"SOURCE_ID"`
	Body         string         `json:"BODY"`
	Keywords     string         `json:"KEYWORDS"`
	Lang         string         `json:"LANG"`
	Upvotes      int32          `json:"UPVOTES"`
	Downvotes    int32          `json:"DOWNVOTES"`
	Score        int32          `json:"SCORE"`
	Sentiment    string         `json:"SENTIMENT"`
	Status       string         `json:"STATUS"`
	CreatedOn    int64          `json:"CREATED_ON"`
	UpdatedOn    int64          `json:"UPDATED_ON"`
	SourceData   NewsSource     `json:"SOURCE_DATA"`
	CategoryData []CategoryData `json:"CATEGORY_DATA"`
}

// NewsSource is a publisher the news feed ingests.
type NewsSource struct {
	Type           string `json:"TYPE"`
	ID             int32  `json:"ID"`
	SourceKey      string `json:"SOURCE_KEY"`
	Name           string `json:"NAME"`
	ImageURL       string `json:"IMAGE_URL"`
	URL            string `json:"URL"`
	Lang           string `json:"LANG"`
	SourceType     string `json:"SOURCE_TYPE"`
	LaunchDate     *int64 `json:"LAUNCH_DATE"`
	SortOrder      int32  `json:"SORT_ORDER"`
	BenchmarkScore int32  `json:"BENCHMARK_SCORE"`
	Status         string `json:"STATUS"`
	LastUpdatedTs  int64  `json:"LAST_UPDATED_TS"`
	CreatedOn      int64  `json:"CREATED_ON"`
	UpdatedOn      int64  `json:"UPDATED_ON"`
}

// CategoryFilter holds the keywords and phrases that assign a category.
type CategoryFilter struct {
	IncludedWords   []string `json:"INCLUDED_WORDS,omitempty"`
	IncludedPhrases []string `json:"INCLUDED_PHRASES,omitempty"`
	ExcludedPhrases []string `json:"EXCLUDED_PHRASES,omitempty"`
}

// NewsCategory is a news topic and the filter that assigns articles to it.
type NewsCategory struct {
	Type      string          `json:"TYPE"`
	ID        int32           `json:"ID"`
	Name      string          `json:"NAME"`
	Filter    *CategoryFilter `json:"FILTER"`
	Status    string          `json:"STATUS"`
	CreatedOn int64           `json:"CREATED_ON"`
	UpdatedOn *int64          `json:"UPDATED_ON"`
}
