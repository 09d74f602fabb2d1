package repoargs

type RepositoryName string

const (
	UserRepoName     RepositoryName = "user"
	CustomerRepoName RepositoryName = "customer"
	LineRepoName     RepositoryName = "billable_line"
	PaymentRepoName  RepositoryName = "payment"
)
