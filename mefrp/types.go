package mefrp

// Fields tagged `mefrp:"optional"` may be missing from a response; every
// other field must be present or decoding fails with a *DecodeError.

// UserInfo is the account returned by GetUserInfo.
type UserInfo struct {
	UserID        int64   `json:"userId"`
	Username      string  `json:"username"`
	Email         string  `json:"email"`
	Group         string  `json:"group"`
	IsRealname    bool    `json:"isRealname"`
	RegTime       int64   `json:"regTime"`
	Status        int     `json:"status"` // 0 active, 1 banned, 2 traffic exceeded
	Traffic       int64   `json:"traffic"`
	UsedProxies   int     `json:"usedProxies"`
	FriendlyGroup string  `json:"friendlyGroup"`
	MaxProxies    int     `json:"maxProxies"`
	InBound       int     `json:"inBound"`
	OutBound      int     `json:"outBound"`
	TodaySigned   bool    `json:"todaySigned"`
	BanReason     *string `json:"banReason" mefrp:"optional"`
	RealnameTimes int     `json:"realnameTimes" mefrp:"optional"`
	VipExpireTime *int64  `json:"vipExpireTime" mefrp:"optional"`
}

// SystemStatus reports the health of the service.
type SystemStatus struct {
	Status int    `json:"status"` // 0 normal, 1 degraded, 2 offline
	Remark string `json:"remark"`
}

// Proxy is one tunnel owned by the user.
type Proxy struct {
	ProxyID              int64  `json:"proxyId"`
	Username             string `json:"username"`
	ProxyName            string `json:"proxyName"`
	ProxyType            string `json:"proxyType"`
	IsBanned             bool   `json:"isBanned"`
	IsDisabled           bool   `json:"isDisabled"`
	LocalIP              string `json:"localIp"`
	LocalPort            int    `json:"localPort"`
	RemotePort           int    `json:"remotePort"`
	NodeID               int64  `json:"nodeId"`
	RunID                string `json:"runId"`
	IsOnline             bool   `json:"isOnline"`
	Domain               string `json:"domain"`
	LastStartTime        int64  `json:"lastStartTime"`
	LastCloseTime        int64  `json:"lastCloseTime"`
	ClientVersion        string `json:"clientVersion"`
	ProxyProtocolVersion string `json:"proxyProtocolVersion"`
	UseEncryption        bool   `json:"useEncryption"`
	UseCompression       bool   `json:"useCompression"`
	Locations            string `json:"locations" mefrp:"optional"`
	AccessKey            string `json:"accessKey"`
	HostHeaderRewrite    string `json:"hostHeaderRewrite"`
	HTTPPlugin           string `json:"httpPlugin" mefrp:"optional"`
	CrtPath              string `json:"crtPath" mefrp:"optional"`
	KeyPath              string `json:"keyPath" mefrp:"optional"`
	RequestHeaders       string `json:"requestHeaders" mefrp:"optional"`
	ResponseHeaders      string `json:"responseHeaders" mefrp:"optional"`
	HTTPUser             string `json:"httpUser" mefrp:"optional"`
	HTTPPassword         string `json:"httpPassword" mefrp:"optional"`
	TransportProtocol    string `json:"transportProtocol" mefrp:"optional"`
}

// NodeConnection is the address book entry of a node.
type NodeConnection struct {
	NodeID   int64  `json:"nodeId"`
	Name     string `json:"name"`
	Hostname string `json:"hostname"`
}

// ProxyList is the result of GetProxyList: the proxies plus the nodes they
// run on.
type ProxyList struct {
	Proxies []Proxy          `json:"proxies"`
	Nodes   []NodeConnection `json:"nodes"`
}

// Node is a server node as seen by its owner or the node list.
type Node struct {
	NodeID          int64  `json:"nodeId"`
	Name            string `json:"name"`
	Hostname        string `json:"hostname"`
	Description     string `json:"description"`
	Token           string `json:"token"`
	ServicePort     int    `json:"servicePort"`
	AdminPort       int    `json:"adminPort"`
	AdminPass       string `json:"adminPass"`
	AllowGroup      string `json:"allowGroup"`
	AllowPort       string `json:"allowPort"`
	AllowType       string `json:"allowType"`
	Region          string `json:"region"`
	Bandwidth       string `json:"bandwidth"`
	IsOnline        bool   `json:"isOnline"`
	IsDisabled      bool   `json:"isDisabled"`
	TotalTrafficIn  int64  `json:"totalTrafficIn"`
	TotalTrafficOut int64  `json:"totalTrafficOut"`
	UpTime          int64  `json:"upTime"`
	Version         string `json:"version"`
	DonateID        int64  `json:"donateId" mefrp:"optional"`
	DonateUser      string `json:"donateUser" mefrp:"optional"`
}

// NodeWithLoad is a Node annotated with its current load.
type NodeWithLoad struct {
	Node
	LoadPercent int `json:"loadPercent" mefrp:"optional"`
}

// CreateProxyData lists what the user may choose from when creating a proxy.
type CreateProxyData struct {
	Nodes        []NodeWithLoad `json:"nodes"`
	Groups       []UserGroup    `json:"groups"`
	CurrentGroup string         `json:"currentGroup"`
}

// ProxyConfig is a rendered frpc configuration.
type ProxyConfig struct {
	Config string `json:"config"`
	Type   string `json:"type"`
}

// NodeStatus is the live status of one node.
type NodeStatus struct {
	NodeID          int64  `json:"nodeId"`
	Name            string `json:"name"`
	TotalTrafficIn  int64  `json:"totalTrafficIn"`
	TotalTrafficOut int64  `json:"totalTrafficOut"`
	OnlineClient    int    `json:"onlineClient"`
	OnlineProxy     int    `json:"onlineProxy"`
	IsOnline        bool   `json:"isOnline"`
	Version         string `json:"version"`
	Uptime          int64  `json:"uptime"`
	CurConns        int    `json:"curConns"`
	LoadPercent     int    `json:"loadPercent"`
}

// Statistics are the public service totals.
type Statistics struct {
	Users   int   `json:"users"`
	Nodes   int   `json:"nodes"`
	Proxies int   `json:"proxies"`
	Traffic int64 `json:"traffic"`
}

// UserGroup describes the limits of a membership group.
type UserGroup struct {
	Name         string `json:"name"`
	FriendlyName string `json:"friendlyName"`
	MaxProxies   int    `json:"maxProxies"`
	BaseTraffic  int64  `json:"baseTraffic"`
	OutBound     int    `json:"outBound"`
	InBound      int    `json:"inBound"`
}

// StoreItem is a product in the public store.
type StoreItem struct {
	Type                     string  `json:"type"`
	Name                     string  `json:"name"`
	Price                    float64 `json:"price"`
	Unit                     string  `json:"unit"`
	Description              string  `json:"description"`
	Enabled                  bool    `json:"enabled"`
	DiscountEnabled          bool    `json:"discountEnabled"`
	DiscountPrice            float64 `json:"discountPrice"`
	DiscountStartTime        int64   `json:"discountStartTime"`
	DiscountEndTime          int64   `json:"discountEndTime"`
	CurrentPrice             float64 `json:"currentPrice"`
	IsDiscountActive         bool    `json:"isDiscountActive"`
	DiscountRemainingSeconds int64   `json:"discountRemainingSeconds"`
}

// OperationLog is one entry of the account audit log.
type OperationLog struct {
	LogID     int64  `json:"logId"`
	Category  string `json:"category"`
	Details   string `json:"details"`
	IPAddress string `json:"ipAddress"`
	Status    string `json:"status"`
	CreatedAt string `json:"createdAt"`
}

// OperationLogList is a page of the audit log.
type OperationLogList struct {
	Data       []OperationLog `json:"data"`
	Total      int            `json:"total"`
	Page       int            `json:"page"`
	PageSize   int            `json:"pageSize"`
	TotalPages int            `json:"totalPages"`
}

// OperationLogStats counts audit log entries per period.
type OperationLogStats struct {
	MonthCount int `json:"monthCount"`
	TodayCount int `json:"todayCount"`
	TotalCount int `json:"totalCount"`
	WeekCount  int `json:"weekCount"`
}

// Ads is an advertisement placed by a user.
type Ads struct {
	AdsID          int64   `json:"adsId"`
	AdsOwner       string  `json:"adsOwner"`
	AdsURL         string  `json:"adsUrl"`
	AdsType        string  `json:"adsType"`
	AdsContent     string  `json:"adsContent"`
	AdsImageURL    string  `json:"adsImageUrl"`
	AdsStartTime   int64   `json:"adsStartTime"`
	AdsExpire      int64   `json:"adsExpire"`
	RenewalPrice   float64 `json:"renewalPrice"`
	AdsPlacement   string  `json:"adsPlacement"`
	AdsClick       int64   `json:"adsClick"`
	AdsImpression  int64   `json:"adsImpression"`
	AdsStatus      int     `json:"adsStatus"`
	AdsReviewNote  string  `json:"adsReviewNote"`
	AdsReviewer    string  `json:"adsReviewer"`
	AdsReviewTime  int64   `json:"adsReviewTime"`
	AdsSlotID      int64   `json:"adsSlotId"`
	AdsCreatedTime int64   `json:"adsCreatedTime"`
}

// AdCredit is the remaining ad quota of a slot.
type AdCredit struct {
	CreditID   int64   `json:"creditId"`
	UserID     int64   `json:"userId"`
	Username   string  `json:"username"`
	SlotID     int64   `json:"slotId"`
	SlotName   *string `json:"slotName" mefrp:"optional"`
	Total      int     `json:"total" mefrp:"optional"`
	Used       int     `json:"used" mefrp:"optional"`
	UpdateTime int64   `json:"updateTime" mefrp:"optional"`
	ExpireTime int64   `json:"expireTime" mefrp:"optional"`
}

// AdCreditPurchase is the result of PurchaseAdCredits.
type AdCreditPurchase struct {
	Credits    int     `json:"credits"`
	Purchased  int     `json:"purchased"`
	TotalPrice float64 `json:"totalPrice"`
}

// Order is a store order.
type Order struct {
	OrderID    string  `json:"orderId"`
	UserID     int64   `json:"userId"`
	Type       string  `json:"type"`
	Amount     int     `json:"amount"`
	Months     int     `json:"months"`
	Money      float64 `json:"money"`
	Status     int     `json:"status"`
	PayType    string  `json:"payType"`
	PayURL     string  `json:"payURL"`
	PayInfo    string  `json:"payInfo"`
	PayHTML    string  `json:"payHTML"`
	PayQRCode  string  `json:"payQRCode"`
	TradeNo    string  `json:"tradeNo"`
	CouponCode string  `json:"couponCode"`
	AdSlotType string  `json:"adSlotType"`
	CreateTime int64   `json:"createTime"`
	UpdateTime int64   `json:"updateTime"`
}

// OrderList is a page of orders.
type OrderList struct {
	Orders []Order `json:"orders"`
	Total  int64   `json:"total"`
}

// NodeDonate is a node donation application.
type NodeDonate struct {
	DonateID     int64  `json:"donateId"`
	Username     string `json:"username"`
	NodeName     string `json:"nodeName"`
	Hostname     string `json:"hostname"`
	Description  string `json:"description"`
	ServicePort  int    `json:"servicePort"`
	AdminPort    int    `json:"adminPort"`
	AdminPass    string `json:"adminPass"`
	AllowGroup   string `json:"allowGroup"`
	AllowPort    string `json:"allowPort"`
	AllowType    string `json:"allowType"`
	Region       string `json:"region"`
	Bandwidth    string `json:"bandwidth"`
	Status       int    `json:"status"`
	RejectReason string `json:"rejectReason"`
	ApplyTime    int64  `json:"applyTime"`
	ReviewTime   int64  `json:"reviewTime"`
	NodeID       int64  `json:"nodeId"`
}

// EasyStartProxy is everything frpc needs to start one proxy.
type EasyStartProxy struct {
	ProxyID              int64             `json:"proxyId"`
	Username             string            `json:"username"`
	ProxyName            string            `json:"proxyName"`
	ProxyType            string            `json:"proxyType"`
	IsBanned             bool              `json:"isBanned"`
	IsDisabled           bool              `json:"isDisabled"`
	LocalIP              string            `json:"localIp"`
	LocalPort            int               `json:"localPort"`
	RemotePort           int               `json:"remotePort"`
	RunID                string            `json:"runId"`
	IsOnline             bool              `json:"isOnline"`
	Domain               string            `json:"domain"`
	LastStartTime        int64             `json:"lastStartTime"`
	LastCloseTime        int64             `json:"lastCloseTime"`
	ClientVersion        string            `json:"clientVersion"`
	ProxyProtocolVersion string            `json:"proxyProtocolVersion"`
	UseEncryption        bool              `json:"useEncryption"`
	UseCompression       bool              `json:"useCompression"`
	Locations            string            `json:"locations"`
	AccessKey            string            `json:"accessKey"`
	HostHeaderRewrite    string            `json:"hostHeaderRewrite"`
	HTTPPlugin           string            `json:"httpPlugin"`
	CrtPath              string            `json:"crtPath"`
	KeyPath              string            `json:"keyPath"`
	RequestHeaders       map[string]string `json:"requestHeaders"`
	HTTPUser             string            `json:"httpUser"`
	HTTPPassword         string            `json:"httpPassword"`
	NodeAddr             string            `json:"nodeAddr"`
	NodePort             int               `json:"nodePort"`
	NodeToken            string            `json:"nodeToken"`
}

// Product is a downloadable frpc build.
type Product struct {
	ProductID string `json:"productId"`
	System    string `json:"system"`
	Arch      string `json:"arch"`
	Name      string `json:"name"`
	Desc      string `json:"desc"`
	Path      string `json:"path"`
	Version   string `json:"version"`
	IsPublic  bool   `json:"isPublic"`
}

// DownloadSource is a mirror serving Products.
type DownloadSource struct {
	ID   int64  `json:"id"`
	Path string `json:"path"`
	Name string `json:"name"`
}

// NodeToken is the frps secret of a node.
type NodeToken struct {
	ServerPort int    `json:"serverPort"`
	Token      string `json:"token"`
}

// MagicLinkLogin is the result of VerifyMagicLink.
type MagicLinkLogin struct {
	Token    string `json:"token"`
	Username string `json:"username"`
	Group    string `json:"group"`
}

// The records below have no fixed server schema; every field is optional.

// UpdateInfo is the result of CheckUpdate.
type UpdateInfo struct {
	HasUpdate     bool   `json:"hasUpdate" mefrp:"optional"`
	ForceUpdate   bool   `json:"forceUpdate" mefrp:"optional"`
	LatestVersion string `json:"latestVersion" mefrp:"optional"`
	DownloadURL   string `json:"downloadUrl" mefrp:"optional"`
	Changelog     string `json:"changelog" mefrp:"optional"`
}

// DailyTraffic is one day of account traffic in bytes.
type DailyTraffic struct {
	Date       string `json:"date" mefrp:"optional"`
	TrafficIn  int64  `json:"trafficIn" mefrp:"optional"`
	TrafficOut int64  `json:"trafficOut" mefrp:"optional"`
}

// UserTrafficStats is the result of GetUserTrafficStats.
type UserTrafficStats struct {
	DailyTraffic []DailyTraffic `json:"dailyTraffic" mefrp:"optional"`
	TotalIn      int64          `json:"totalIn" mefrp:"optional"`
	TotalOut     int64          `json:"totalOut" mefrp:"optional"`
}

// RealnameInfo is the identity verification state of the account.
type RealnameInfo struct {
	IsRealname    bool   `json:"isRealname" mefrp:"optional"`
	Realname      string `json:"realname" mefrp:"optional"`
	IDCard        string `json:"idCard" mefrp:"optional"`
	VerifyTime    int64  `json:"verifyTime" mefrp:"optional"`
	RealnameTimes int    `json:"realnameTimes" mefrp:"optional"`
}

// IcpDomain is a domain with an ICP filing registered to the account.
type IcpDomain struct {
	ID         int64  `json:"id" mefrp:"optional"`
	Domain     string `json:"domain" mefrp:"optional"`
	IcpNumber  string `json:"icpNumber" mefrp:"optional"`
	Status     int    `json:"status" mefrp:"optional"`
	CreateTime int64  `json:"createTime" mefrp:"optional"`
}

// PurchaseStatus tells whether the account may buy from the store.
type PurchaseStatus struct {
	CanPurchase     bool   `json:"canPurchase" mefrp:"optional"`
	Reason          string `json:"reason" mefrp:"optional"`
	MonthlyLimit    int    `json:"monthlyLimit" mefrp:"optional"`
	MonthlyUsed     int    `json:"monthlyUsed" mefrp:"optional"`
	RequireRealname bool   `json:"requireRealname" mefrp:"optional"`
}

// OrderPayment is the result of SubmitOrder and RepayOrder: where and how to
// pay for the order.
type OrderPayment struct {
	OrderID   string  `json:"orderId" mefrp:"optional"`
	Money     float64 `json:"money" mefrp:"optional"`
	PayType   string  `json:"payType" mefrp:"optional"`
	PayURL    string  `json:"payURL" mefrp:"optional"`
	PayInfo   string  `json:"payInfo" mefrp:"optional"`
	PayHTML   string  `json:"payHTML" mefrp:"optional"`
	PayQRCode string  `json:"payQRCode" mefrp:"optional"`
}

// OrderStatus is the result of QueryOrder.
type OrderStatus struct {
	OrderID string  `json:"orderId" mefrp:"optional"`
	Status  int     `json:"status" mefrp:"optional"`
	Money   float64 `json:"money" mefrp:"optional"`
	TradeNo string  `json:"tradeNo" mefrp:"optional"`
}

// CDKUsage is one redeemed gift code.
type CDKUsage struct {
	LogID    int64  `json:"logId" mefrp:"optional"`
	Code     string `json:"code" mefrp:"optional"`
	Type     string `json:"type" mefrp:"optional"`
	Value    string `json:"value" mefrp:"optional"`
	UsedTime int64  `json:"usedTime" mefrp:"optional"`
}

// CDKUsageList is a page of redeemed gift codes.
type CDKUsageList struct {
	Logs     []CDKUsage `json:"logs" mefrp:"optional"`
	Total    int64      `json:"total" mefrp:"optional"`
	Page     int        `json:"page" mefrp:"optional"`
	PageSize int        `json:"pageSize" mefrp:"optional"`
}

// CouponValidation is the result of ValidateCoupon.
type CouponValidation struct {
	Valid          bool    `json:"valid" mefrp:"optional"`
	Message        string  `json:"message" mefrp:"optional"`
	DiscountType   string  `json:"discountType" mefrp:"optional"`
	DiscountValue  float64 `json:"discountValue" mefrp:"optional"`
	DiscountAmount float64 `json:"discountAmount" mefrp:"optional"`
	FinalAmount    float64 `json:"finalAmount" mefrp:"optional"`
}

// AdSlot is a placement ads can be bought for.
type AdSlot struct {
	SlotID      int64   `json:"slotId" mefrp:"optional"`
	Name        string  `json:"name" mefrp:"optional"`
	Placement   string  `json:"placement" mefrp:"optional"`
	Description string  `json:"description" mefrp:"optional"`
	Price       float64 `json:"price" mefrp:"optional"`
	MaxAds      int     `json:"maxAds" mefrp:"optional"`
	Enabled     bool    `json:"enabled" mefrp:"optional"`
}

// AdSlotUsage is an AdSlot with its current occupancy.
type AdSlotUsage struct {
	AdSlot
	UsedAds   int `json:"usedAds" mefrp:"optional"`
	Available int `json:"available" mefrp:"optional"`
}

// AdsStats sums the performance of the user's ads.
type AdsStats struct {
	TotalAds         int   `json:"totalAds" mefrp:"optional"`
	ActiveAds        int   `json:"activeAds" mefrp:"optional"`
	TotalClicks      int64 `json:"totalClicks" mefrp:"optional"`
	TotalImpressions int64 `json:"totalImpressions" mefrp:"optional"`
}

// NodeEditRequest asks for the settings of a donated node to change. The same
// shape is returned by GetUserNodeEditRequests with the review fields set.
type NodeEditRequest struct {
	EditID       int64  `json:"editId,omitempty" mefrp:"optional"`
	NodeID       int64  `json:"nodeId" mefrp:"optional"`
	Hostname     string `json:"hostname" mefrp:"optional"`
	Description  string `json:"description" mefrp:"optional"`
	ServicePort  int    `json:"servicePort" mefrp:"optional"`
	AdminPort    int    `json:"adminPort" mefrp:"optional"`
	AdminPass    string `json:"adminPass" mefrp:"optional"`
	AllowGroup   string `json:"allowGroup" mefrp:"optional"`
	AllowPort    string `json:"allowPort" mefrp:"optional"`
	AllowType    string `json:"allowType" mefrp:"optional"`
	Region       string `json:"region" mefrp:"optional"`
	Bandwidth    string `json:"bandwidth" mefrp:"optional"`
	Status       int    `json:"status,omitempty" mefrp:"optional"`
	RejectReason string `json:"rejectReason,omitempty" mefrp:"optional"`
	ApplyTime    int64  `json:"applyTime,omitempty" mefrp:"optional"`
}

// NodeDeleteRequest is a pending or reviewed request to remove a donated node.
type NodeDeleteRequest struct {
	RequestID    int64  `json:"requestId" mefrp:"optional"`
	NodeID       int64  `json:"nodeId" mefrp:"optional"`
	Reason       string `json:"reason" mefrp:"optional"`
	Status       int    `json:"status" mefrp:"optional"`
	RejectReason string `json:"rejectReason" mefrp:"optional"`
	ApplyTime    int64  `json:"applyTime" mefrp:"optional"`
}

// InstallScript is the frps install script for a donated node.
type InstallScript struct {
	Script string `json:"script" mefrp:"optional"`
	Path   string `json:"path" mefrp:"optional"`
}

// OperationLogCategory is a category usable in OperationLogFilter.
type OperationLogCategory struct {
	Value string `json:"value" mefrp:"optional"`
	Label string `json:"label" mefrp:"optional"`
}

// Request bodies.

// RegisterRequest creates an account.
type RegisterRequest struct {
	Username  string `json:"username"`
	Email     string `json:"email"`
	EmailCode string `json:"emailCode"`
	Password  string `json:"password"`
}

// LoginRequest exchanges credentials for a token.
type LoginRequest struct {
	Username     string `json:"username"`
	Password     string `json:"password"`
	CaptchaToken string `json:"captchaToken"`
}

// MagicLinkRequest asks for a passwordless login mail.
type MagicLinkRequest struct {
	User         string `json:"user"`
	Callback     string `json:"callback"`
	CaptchaToken string `json:"captchaToken"`
}

// IForgotRequest resets a forgotten password.
type IForgotRequest struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	EmailCode string `json:"emailCode"`
}

// ChangePasswordRequest changes the password of the logged-in user.
type ChangePasswordRequest struct {
	OldPassword string `json:"oldPassword"`
	NewPassword string `json:"newPassword"`
}

// CreateProxyRequest describes a new proxy.
type CreateProxyRequest struct {
	ProxyName            string `json:"proxyName"`
	ProxyType            string `json:"proxyType"`
	LocalIP              string `json:"localIp"`
	LocalPort            int    `json:"localPort"`
	RemotePort           int    `json:"remotePort"`
	NodeID               int64  `json:"nodeId"`
	Domain               string `json:"domain,omitempty"`
	ProxyProtocolVersion string `json:"proxyProtocolVersion,omitempty"`
	UseEncryption        bool   `json:"useEncryption"`
	UseCompression       bool   `json:"useCompression"`
	HostHeaderRewrite    string `json:"hostHeaderRewrite,omitempty"`
	HeaderXFromWhere     string `json:"headerXFromWhere,omitempty"`
}

// UpdateProxyRequest replaces the settings of an existing proxy. Nil pointer
// fields are sent as null and clear the setting.
type UpdateProxyRequest struct {
	ProxyID              int64   `json:"proxyId"`
	ProxyName            string  `json:"proxyName"`
	ProxyType            string  `json:"proxyType"`
	LocalIP              string  `json:"localIp"`
	LocalPort            int     `json:"localPort"`
	RemotePort           int     `json:"remotePort"`
	NodeID               int64   `json:"nodeId"`
	Domain               *string `json:"domain"`
	ProxyProtocolVersion *string `json:"proxyProtocolVersion"`
	HostHeaderRewrite    *string `json:"hostHeaderRewrite"`
	HeaderXFromWhere     *string `json:"headerXFromWhere"`
	UseEncryption        bool    `json:"useEncryption"`
	UseCompression       bool    `json:"useCompression"`
}

// OperationLogFilter selects a page of the audit log. Empty strings are not sent.
type OperationLogFilter struct {
	Page      int
	PageSize  int
	Category  string
	Status    string
	StartTime string
	EndTime   string
}

// CheckUpdateRequest identifies the installed build asking for updates.
type CheckUpdateRequest struct {
	ProductID      string `json:"productId"`
	CurrentVersion string `json:"currentVersion"`
	System         string `json:"system"`
	Arch           string `json:"arch"`
}

// RealnameRequest submits identity documents for verification.
type RealnameRequest struct {
	Realname string `json:"realname"`
	IDCard   string `json:"idCard"`
}

// SubmitOrderRequest places a store order.
type SubmitOrderRequest struct {
	Type       string `json:"type"`
	Amount     int    `json:"amount"`
	Months     int    `json:"months,omitempty"`
	PayMethod  string `json:"payMethod"`
	CouponCode string `json:"couponCode,omitempty"`
	AdSlotType string `json:"adSlotType,omitempty"`
}
