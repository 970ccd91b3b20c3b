package types

// The asset types mirror the datastore columns of the Toronto open data
// packages. Upper-case JSON names are the portal's own column names. Columns
// use FlexString and FlexInt so a record with an unexpected JSON type still
// decodes.

// ParkAsset is one row of the parks and recreation facilities package.
type ParkAsset struct {
	ID         FlexInt    `json:"_id"`
	LocationID FlexInt    `json:"LOCATIONID"`
	AssetID    FlexInt    `json:"ASSET_ID"`
	Name       FlexString `json:"ASSET_NAME"`
	Type       FlexString `json:"TYPE"`
	Amenities  FlexString `json:"AMENITIES"`
	Address    FlexString `json:"ADDRESS"`
	Phone      FlexString `json:"PHONE"`
	URL        FlexString `json:"URL"`
	Geometry   FlexString `json:"geometry,omitempty"`
}

// GreenSpaceAsset is one row of the green spaces package.
type GreenSpaceAsset struct {
	ID            FlexInt    `json:"_id"`
	AreaID        FlexInt    `json:"AREA_ID"`
	AreaAttrID    FlexInt    `json:"AREA_ATTR_ID"`
	ParentAreaID  FlexInt    `json:"PARENT_AREA_ID"`
	AreaClassID   FlexInt    `json:"AREA_CLASS_ID"`
	AreaClass     FlexString `json:"AREA_CLASS"`
	AreaShortCode FlexString `json:"AREA_SHORT_CODE"`
	AreaLongCode  FlexString `json:"AREA_LONG_CODE"`
	AreaName      FlexString `json:"AREA_NAME"`
	AreaDesc      FlexString `json:"AREA_DESC"`
	ObjectID      FlexInt    `json:"OBJECTID"`
	Geometry      FlexString `json:"geometry,omitempty"`
}

// WifiAsset is one row of the free public Wi-Fi package. The coordinates
// usually arrive as strings, sometimes as numbers.
type WifiAsset struct {
	ID           FlexInt    `json:"_id"`
	Name         FlexString `json:"NAME"`
	Address      FlexString `json:"ADDRESS"`
	Latitude     FlexString `json:"LATITUDE"`
	Longitude    FlexString `json:"LONGITUDE"`
	Provider     FlexString `json:"PROVIDER"`
	LocationType FlexString `json:"LOCATION_TYPE"`
	Geometry     FlexString `json:"geometry,omitempty"`
}

// GreenStreetAsset is one row of the green streets package. Only part of the
// upstream schema is known.
type GreenStreetAsset struct {
	ID         FlexInt    `json:"_id"`
	StreetName FlexString `json:"STREET_NAME,omitempty"`
	Status     FlexString `json:"STATUS,omitempty"`
	Geometry   FlexString `json:"geometry,omitempty"`
}
