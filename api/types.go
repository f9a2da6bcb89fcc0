package api

// LoginRequest carries the credentials the login form collects.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// RegisterRequest creates a new console account.
type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Nickname string `json:"nickname,omitempty"`
	Email    string `json:"email,omitempty"`
}

// RoleRef is a role attached to a user profile.
type RoleRef struct {
	ID       int64  `json:"id"`
	RoleCode string `json:"roleCode"`
	RoleName string `json:"roleName,omitempty"`
}

// UserProfile is the full account view returned by /auth/current.
type UserProfile struct {
	ID          int64     `json:"id"`
	Username    string    `json:"username"`
	Nickname    string    `json:"nickname,omitempty"`
	Email       string    `json:"email,omitempty"`
	Phone       string    `json:"phone,omitempty"`
	Avatar      string    `json:"avatar,omitempty"`
	Status      int       `json:"status"`
	Roles       []RoleRef `json:"roles,omitempty"`
	Permissions []string  `json:"permissions,omitempty"`
	CreateTime  string    `json:"createTime,omitempty"`
}

// LoginResponse is returned by /auth/login. Roles and Permissions may be
// partial; the session re-merges them from /auth/current after login.
type LoginResponse struct {
	Token       string       `json:"token"`
	UserInfo    *UserProfile `json:"userInfo,omitempty"`
	Roles       []string     `json:"roles,omitempty"`
	Permissions []string     `json:"permissions,omitempty"`
}

// PageQuery selects one page of a listing endpoint. Extra carries
// endpoint-specific filters (username, status, ...).
type PageQuery struct {
	Current int
	Size    int
	Extra   map[string]string
}

// Page is the backend's pagination envelope.
type Page[T any] struct {
	Records []T   `json:"records"`
	Total   int64 `json:"total"`
	Current int   `json:"current"`
	Size    int   `json:"size"`
}

// User is a managed console account as listed by /user/page.
type User struct {
	ID         int64  `json:"id"`
	Username   string `json:"username"`
	Nickname   string `json:"nickname,omitempty"`
	Email      string `json:"email,omitempty"`
	Phone      string `json:"phone,omitempty"`
	Avatar     string `json:"avatar,omitempty"`
	Status     int    `json:"status"`
	CreateTime string `json:"createTime,omitempty"`
}

// Role is a managed role as listed by /role/page.
type Role struct {
	ID          int64  `json:"id"`
	RoleCode    string `json:"roleCode"`
	RoleName    string `json:"roleName"`
	Description string `json:"description,omitempty"`
	Status      int    `json:"status"`
	CreateTime  string `json:"createTime,omitempty"`
}

// DictType is a dictionary category.
type DictType struct {
	ID         int64  `json:"id"`
	DictName   string `json:"dictName"`
	DictCode   string `json:"dictCode"`
	Status     int    `json:"status"`
	Remark     string `json:"remark,omitempty"`
	CreateTime string `json:"createTime,omitempty"`
}

// DictItem is a single entry under a dictionary type.
type DictItem struct {
	ID         int64  `json:"id"`
	DictTypeID int64  `json:"dictTypeId"`
	ItemLabel  string `json:"itemLabel"`
	ItemValue  string `json:"itemValue"`
	SortOrder  int    `json:"sortOrder,omitempty"`
	Status     int    `json:"status"`
	Remark     string `json:"remark,omitempty"`
}

// Datasource is a configured Notion integration source.
type Datasource struct {
	ID             int64  `json:"id"`
	DatasourceName string `json:"datasourceName"`
	NotionToken    string `json:"notionToken,omitempty"`
	DatabaseID     string `json:"databaseId"`
	Status         int    `json:"status"`
	Remark         string `json:"remark,omitempty"`
	LastSyncTime   string `json:"lastSyncTime,omitempty"`
}

// AudioMeta is the parsed metadata of one uploaded audio file.
type AudioMeta struct {
	ID         int64  `json:"id,omitempty"`
	FileName   string `json:"fileName"`
	Title      string `json:"title,omitempty"`
	Artist     string `json:"artist,omitempty"`
	Album      string `json:"album,omitempty"`
	Format     string `json:"format,omitempty"`
	Bitrate    int    `json:"bitrate,omitempty"`
	SampleRate int    `json:"sampleRate,omitempty"`
	BitDepth   int    `json:"bitDepth,omitempty"`
	Duration   int    `json:"duration,omitempty"`
	Size       int64  `json:"size,omitempty"`
	Quality    string `json:"quality,omitempty"`
}
