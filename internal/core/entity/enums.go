package entity

import "fmt"

type EntityType int

const (
	EntityTypeNone EntityType = iota
	EntityTypePed
	EntityTypeVehicle
	EntityTypeProp
)

func (t EntityType) String() string {
	switch t {
	case EntityTypePed:
		return "ped"
	case EntityTypeVehicle:
		return "vehicle"
	case EntityTypeProp:
		return "prop"
	default:
		return "none"
	}
}

type Gender int

const (
	GenderMale Gender = iota
	GenderFemale
)

func (g Gender) String() string {
	if g == GenderFemale {
		return "female"
	}
	return "male"
}

// DrivingStyle is a bit set understood by the simulation's driving tasks.
type DrivingStyle int

const (
	DrivingStyleNormal                   DrivingStyle = 786603
	DrivingStyleIgnoreLights             DrivingStyle = 2883621
	DrivingStyleSometimesOvertakeTraffic DrivingStyle = 5
	DrivingStyleRushed                   DrivingStyle = 1074528293
	DrivingStyleAvoidTraffic             DrivingStyle = 786468
	DrivingStyleAvoidTrafficExtremely    DrivingStyle = 6
)

func (d DrivingStyle) String() string {
	switch d {
	case DrivingStyleNormal:
		return "normal"
	case DrivingStyleIgnoreLights:
		return "ignore_lights"
	case DrivingStyleSometimesOvertakeTraffic:
		return "sometimes_overtake_traffic"
	case DrivingStyleRushed:
		return "rushed"
	case DrivingStyleAvoidTraffic:
		return "avoid_traffic"
	case DrivingStyleAvoidTrafficExtremely:
		return "avoid_traffic_extremely"
	default:
		return fmt.Sprintf("driving_style(%d)", int(d))
	}
}

type HelmetType uint32

const (
	HelmetRegularMotorcycle HelmetType = 4096
	HelmetFireman           HelmetType = 16384
	HelmetPilotHeadset      HelmetType = 32768
)

func (h HelmetType) String() string {
	switch h {
	case HelmetRegularMotorcycle:
		return "regular_motorcycle_helmet"
	case HelmetFireman:
		return "fireman_helmet"
	case HelmetPilotHeadset:
		return "pilot_headset"
	default:
		return fmt.Sprintf("helmet(%d)", uint32(h))
	}
}

type ParachuteLandingType int

const (
	ParachuteLandingNone      ParachuteLandingType = -1
	ParachuteLandingStumbling ParachuteLandingType = 1
	ParachuteLandingRolling   ParachuteLandingType = 2
	ParachuteLandingRagdoll   ParachuteLandingType = 3
)

func (p ParachuteLandingType) String() string {
	switch p {
	case ParachuteLandingNone:
		return "none"
	case ParachuteLandingStumbling:
		return "stumbling"
	case ParachuteLandingRolling:
		return "rolling"
	case ParachuteLandingRagdoll:
		return "ragdoll"
	default:
		return fmt.Sprintf("landing(%d)", int(p))
	}
}

type ParachuteState int

const (
	ParachuteStateNone ParachuteState = iota - 1
	ParachuteStateFreeFalling
	ParachuteStateDeploying
	ParachuteStateGliding
	ParachuteStateLandingOrFallingToDoom
)

func (p ParachuteState) String() string {
	switch p {
	case ParachuteStateNone:
		return "none"
	case ParachuteStateFreeFalling:
		return "free_falling"
	case ParachuteStateDeploying:
		return "deploying"
	case ParachuteStateGliding:
		return "gliding"
	case ParachuteStateLandingOrFallingToDoom:
		return "landing"
	default:
		return fmt.Sprintf("parachute(%d)", int(p))
	}
}

// VehicleSeat numbering follows the simulation: -1 is the driver, 0 the front
// passenger. None and Any are sentinels that never name a physical seat.
type VehicleSeat int

const (
	SeatNone       VehicleSeat = -3
	SeatAny        VehicleSeat = -2
	SeatDriver     VehicleSeat = -1
	SeatPassenger  VehicleSeat = 0
	SeatLeftFront  VehicleSeat = -1
	SeatRightFront VehicleSeat = 0
	SeatLeftRear   VehicleSeat = 1
	SeatRightRear  VehicleSeat = 2
	SeatExtra1     VehicleSeat = 3
	SeatExtra2     VehicleSeat = 4
	SeatExtra3     VehicleSeat = 5
	SeatExtra4     VehicleSeat = 6
)

func (s VehicleSeat) String() string {
	switch s {
	case SeatNone:
		return "none"
	case SeatAny:
		return "any"
	case SeatDriver:
		return "driver"
	case SeatPassenger:
		return "passenger"
	case SeatLeftRear:
		return "left_rear"
	case SeatRightRear:
		return "right_rear"
	default:
		return fmt.Sprintf("extra_%d", int(s)-2)
	}
}

// FiringPattern is a hashed pattern name.
type FiringPattern uint32

const (
	FiringPatternFullAuto         FiringPattern = 0xC6EE6B4C
	FiringPatternBurstFire        FiringPattern = 0xD6FF6D61
	FiringPatternBurstInCover     FiringPattern = 0x026321F1
	FiringPatternBurstFireDriveby FiringPattern = 0xD31265F2
	FiringPatternFromGround       FiringPattern = 0x2264E5D6
	FiringPatternDelayFireByOne   FiringPattern = 0x7A845691
	FiringPatternSingleShot       FiringPattern = 0x5D60E4E0
	FiringPatternBurstFirePistol  FiringPattern = 0xA018DB8A
	FiringPatternBurstFireSMG     FiringPattern = 0xD10DADEE
	FiringPatternBurstFireRifle   FiringPattern = 0x9C74B406
)

func (f FiringPattern) String() string {
	switch f {
	case FiringPatternFullAuto:
		return "full_auto"
	case FiringPatternBurstFire:
		return "burst_fire"
	case FiringPatternBurstInCover:
		return "burst_in_cover"
	case FiringPatternBurstFireDriveby:
		return "burst_fire_driveby"
	case FiringPatternFromGround:
		return "from_ground"
	case FiringPatternDelayFireByOne:
		return "delay_fire_by_one_sec"
	case FiringPatternSingleShot:
		return "single_shot"
	case FiringPatternBurstFirePistol:
		return "burst_fire_pistol"
	case FiringPatternBurstFireSMG:
		return "burst_fire_smg"
	case FiringPatternBurstFireRifle:
		return "burst_fire_rifle"
	default:
		return fmt.Sprintf("0x%08X", uint32(f))
	}
}

// Bone is a skeleton bone id.
type Bone int

const (
	BoneRoot          Bone = 0
	BonePelvis        Bone = 11816
	BoneSpineRoot     Bone = 57597
	BoneSpine0        Bone = 23553
	BoneSpine1        Bone = 24816
	BoneSpine2        Bone = 24817
	BoneSpine3        Bone = 24818
	BoneNeck          Bone = 39317
	BoneHead          Bone = 31086
	BoneIKHead        Bone = 12844
	BoneLeftUpperArm  Bone = 45509
	BoneRightUpperArm Bone = 40269
	BoneLeftForearm   Bone = 61163
	BoneRightForearm  Bone = 28252
	BoneLeftHand      Bone = 18905
	BoneRightHand     Bone = 57005
	BoneLeftThigh     Bone = 58271
	BoneRightThigh    Bone = 51826
	BoneLeftCalf      Bone = 63931
	BoneRightCalf     Bone = 36864
	BoneLeftFoot      Bone = 14201
	BoneRightFoot     Bone = 52301
)

var boneNames = map[Bone]string{
	BoneRoot:          "root",
	BonePelvis:        "pelvis",
	BoneSpineRoot:     "spine_root",
	BoneSpine0:        "spine0",
	BoneSpine1:        "spine1",
	BoneSpine2:        "spine2",
	BoneSpine3:        "spine3",
	BoneNeck:          "neck",
	BoneHead:          "head",
	BoneIKHead:        "ik_head",
	BoneLeftUpperArm:  "left_upper_arm",
	BoneRightUpperArm: "right_upper_arm",
	BoneLeftForearm:   "left_forearm",
	BoneRightForearm:  "right_forearm",
	BoneLeftHand:      "left_hand",
	BoneRightHand:     "right_hand",
	BoneLeftThigh:     "left_thigh",
	BoneRightThigh:    "right_thigh",
	BoneLeftCalf:      "left_calf",
	BoneRightCalf:     "right_calf",
	BoneLeftFoot:      "left_foot",
	BoneRightFoot:     "right_foot",
}

func (b Bone) String() string {
	if n, ok := boneNames[b]; ok {
		return n
	}
	return fmt.Sprintf("bone(%d)", int(b))
}

// ParseBone accepts the names String produces.
func ParseBone(s string) (Bone, bool) {
	for b, n := range boneNames {
		if n == s {
			return b, true
		}
	}
	return 0, false
}
