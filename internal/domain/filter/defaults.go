package filter

import "github.com/kailas-cloud/skysearch/internal/domain/subscription"

// Defaults returns the descriptor of every filter the catalog knows about.
func Defaults() []Descriptor {
	return []Descriptor{
		{Key: KeyText, Category: CategoryGeneral, MinimumSubscription: subscription.Free, Shape: ShapeText},
		{Key: KeySubjects, Category: CategorySkyAndSubjects, MinimumSubscription: subscription.Free, Shape: ShapeMatchValue},
		{Key: KeyTelescopeType, Category: CategoryEquipment, MinimumSubscription: subscription.Lite, Shape: ShapeMatchValue},
		{Key: KeyCameraType, Category: CategoryEquipment, MinimumSubscription: subscription.Lite, Shape: ShapeMatchValue},
		{Key: KeyTelescope, Category: CategoryEquipment, MinimumSubscription: subscription.Free, Shape: ShapeIDNameList},
		{Key: KeySensor, Category: CategoryEquipment, MinimumSubscription: subscription.Lite, Shape: ShapeIDNameList},
		{Key: KeyCamera, Category: CategoryEquipment, MinimumSubscription: subscription.Free, Shape: ShapeIDNameList},
		{Key: KeyMount, Category: CategoryEquipment, MinimumSubscription: subscription.Lite, Shape: ShapeIDNameList},
		{Key: KeyFilter, Category: CategoryEquipment, MinimumSubscription: subscription.Lite, Shape: ShapeIDNameList},
		{Key: KeyAccessory, Category: CategoryEquipment, MinimumSubscription: subscription.Lite, Shape: ShapeIDNameList},
		{Key: KeySoftware, Category: CategoryEquipment, MinimumSubscription: subscription.Lite, Shape: ShapeIDNameList},
		{Key: KeyAcquisitionMonths, Category: CategoryDates, MinimumSubscription: subscription.Premium, Shape: ShapeMatchValue},
		{Key: KeyRemoteSource, Category: CategorySources, MinimumSubscription: subscription.Premium, Shape: ShapeEnum},
		{Key: KeySubjectType, Category: CategorySkyAndSubjects, MinimumSubscription: subscription.Free, Shape: ShapeEnum},
		{Key: KeyColorOrMono, Category: CategoryEquipment, MinimumSubscription: subscription.Premium, Shape: ShapeMatchValue},
		{Key: KeyModifiedCamera, Category: CategoryEquipment, MinimumSubscription: subscription.Premium, Shape: ShapeScalar},
		{Key: KeyAnimated, Category: CategoryGeneral, MinimumSubscription: subscription.Lite, Shape: ShapeScalar},
		{Key: KeyVideo, Category: CategoryGeneral, MinimumSubscription: subscription.Lite, Shape: ShapeScalar},
		{Key: KeyAward, Category: CategoryGeneral, MinimumSubscription: subscription.Lite, Shape: ShapeMatchValue},
		{Key: KeyDataSource, Category: CategorySources, MinimumSubscription: subscription.Premium, Shape: ShapeEnum},
		{Key: KeyMinimumData, Category: CategoryGeneral, MinimumSubscription: subscription.Premium, Shape: ShapeMatchValue},
		{Key: KeyConstellation, Category: CategorySkyAndSubjects, MinimumSubscription: subscription.Lite, Shape: ShapeEnum},
		{Key: KeyBortleScale, Category: CategoryAcquisition, MinimumSubscription: subscription.Ultimate, Shape: ShapeRange},
		{Key: KeyLicense, Category: CategoryGeneral, MinimumSubscription: subscription.Premium, Shape: ShapeMatchValue},
		{Key: KeyFilterTypes, Category: CategoryEquipment, MinimumSubscription: subscription.Lite, Shape: ShapeMatchValue},
		{Key: KeyCollaboration, Category: CategoryUsers, MinimumSubscription: subscription.Lite, AutoCompleteOnly: true, Shape: ShapeScalar},
		{Key: KeyUsers, Category: CategoryUsers, MinimumSubscription: subscription.Free, AutoCompleteOnly: true, Shape: ShapeIDNameList},

		{Key: KeyDateAcquired, Category: CategoryDates, MinimumSubscription: subscription.Lite, Shape: ShapeRange},
		{Key: KeyIntegrationTime, Category: CategoryAcquisition, MinimumSubscription: subscription.Premium, Shape: ShapeRange},
		{Key: KeyPixelScale, Category: CategoryAcquisition, MinimumSubscription: subscription.Ultimate, Shape: ShapeRange},
		{Key: KeyFieldRadius, Category: CategoryAcquisition, MinimumSubscription: subscription.Ultimate, Shape: ShapeRange},
	}
}
