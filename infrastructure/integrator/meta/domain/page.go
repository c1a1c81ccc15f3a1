package metadomain

// InstagramBusinessAccount é a conta do Instagram vinculada a uma página
type InstagramBusinessAccount struct {
	ID string `json:"id"`
}

// Page é uma página do Facebook retornada por /me/accounts
type Page struct {
	ID                       string                    `json:"id"`
	Name                     string                    `json:"name"`
	AccessToken              string                    `json:"access_token"`
	InstagramBusinessAccount *InstagramBusinessAccount `json:"instagram_business_account,omitempty"`
}

type PagesResponse struct {
	Data []Page `json:"data"`
}

// FollowersCountResponse é a resposta de /{ig-user-id}?fields=followers_count.
// FollowersCount é ponteiro para distinguir campo ausente de zero.
type FollowersCountResponse struct {
	ID             string `json:"id"`
	FollowersCount *int64 `json:"followers_count"`
}
