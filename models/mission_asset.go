package models

// MissionAsset describes equipment or a platform available for a mission.
type MissionAsset struct {
	Audit

	Name      *string `json:"name"`
	AssetType *string `json:"assetType"`
	CallSign  *string `json:"callSign"`
	Quantity  *int64  `json:"quantity"`
}

func (a *MissionAsset) TableName() string { return "mission_asset" }

func (a *MissionAsset) Resource() string { return "mission-asset" }

func (a *MissionAsset) Columns() []string {
	return []string{"name", "asset_type", "call_sign", "quantity"}
}

func (a *MissionAsset) Values() []any {
	return []any{a.Name, a.AssetType, a.CallSign, a.Quantity}
}

func (a *MissionAsset) Targets() []any {
	return []any{&a.Name, &a.AssetType, &a.CallSign, &a.Quantity}
}
