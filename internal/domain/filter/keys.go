package filter

// Filter keys.
const (
	KeyText              = "text"
	KeySubjects          = "subjects"
	KeyTelescopeType     = "telescopeType"
	KeyCameraType        = "cameraType"
	KeyTelescope         = "telescope"
	KeySensor            = "sensor"
	KeyCamera            = "camera"
	KeyMount             = "mount"
	KeyFilter            = "filter"
	KeyAccessory         = "accessory"
	KeySoftware          = "software"
	KeyAcquisitionMonths = "acquisitionMonths"
	KeyRemoteSource      = "remoteSource"
	KeySubjectType       = "subjectType"
	KeyColorOrMono       = "colorOrMono"
	KeyModifiedCamera    = "modifiedCamera"
	KeyAnimated          = "animated"
	KeyVideo             = "video"
	KeyAward             = "award"
	KeyDataSource        = "dataSource"
	KeyMinimumData       = "minimumData"
	KeyConstellation     = "constellation"
	KeyBortleScale       = "bortleScale"
	KeyLicense           = "license"
	KeyFilterTypes       = "filterTypes"
	KeyCollaboration     = "collaboration"
	KeyUsers             = "users"

	KeyDateAcquired    = "dateAcquired"
	KeyIntegrationTime = "integrationTime"
	KeyPixelScale      = "pixelScale"
	KeyFieldRadius     = "fieldRadius"
)
