package native

const (
	tVoid   = KindVoid
	tBool   = KindBool
	tInt    = KindInt
	tFloat  = KindFloat
	tString = KindString
	tVec    = KindVector3
)

// Entities.
var (
	DoesEntityExist    = define("DOES_ENTITY_EXIST", tBool, tInt)
	GetEntityType      = define("GET_ENTITY_TYPE", tInt, tInt)
	GetEntityModel     = define("GET_ENTITY_MODEL", tInt, tInt)
	GetEntityHealth    = define("GET_ENTITY_HEALTH", tInt, tInt)
	SetEntityHealth    = define("SET_ENTITY_HEALTH", tVoid, tInt, tInt)
	GetEntityMaxHealth = define("GET_ENTITY_MAX_HEALTH", tInt, tInt)
	SetEntityMaxHealth = define("SET_ENTITY_MAX_HEALTH", tVoid, tInt, tInt)
	GetEntityCoords    = define("GET_ENTITY_COORDS", tVec, tInt, tBool)
	IsEntityDead       = define("IS_ENTITY_DEAD", tBool, tInt)
	IsEntityInAir      = define("IS_ENTITY_IN_AIR", tBool, tInt)
	IsEntityOnFire     = define("IS_ENTITY_ON_FIRE", tBool, tInt)
	DeleteEntity       = define("DELETE_ENTITY", tVoid, tInt)

	SetEntityIsTargetPriority = define("SET_ENTITY_IS_TARGET_PRIORITY", tVoid, tInt, tBool, tFloat)
)

// Ped attributes.
var (
	GetPedMoney              = define("GET_PED_MONEY", tInt, tInt)
	SetPedMoney              = define("SET_PED_MONEY", tVoid, tInt, tInt)
	IsPedMale                = define("IS_PED_MALE", tBool, tInt)
	GetPedMaxHealth          = define("GET_PED_MAX_HEALTH", tInt, tInt)
	SetPedMaxHealth          = define("SET_PED_MAX_HEALTH", tVoid, tInt, tInt)
	GetPedArmour             = define("GET_PED_ARMOUR", tInt, tInt)
	SetPedArmour             = define("SET_PED_ARMOUR", tVoid, tInt, tInt)
	GetPedAccuracy           = define("GET_PED_ACCURACY", tInt, tInt)
	SetPedAccuracy           = define("SET_PED_ACCURACY", tVoid, tInt, tInt)
	GetSequenceProgress      = define("GET_SEQUENCE_PROGRESS", tInt, tInt)
	SetPedSweat              = define("SET_PED_SWEAT", tVoid, tInt, tFloat)
	ClearPedWetness          = define("CLEAR_PED_WETNESS", tVoid, tInt)
	SetPedWetnessHeight      = define("SET_PED_WETNESS_HEIGHT", tVoid, tInt, tFloat)
	SetAmbientVoiceName      = define("SET_AMBIENT_VOICE_NAME", tVoid, tInt, tString)
	SetPedShootRate          = define("SET_PED_SHOOT_RATE", tVoid, tInt, tInt)
	SetPedFiringPattern      = define("SET_PED_FIRING_PATTERN", tVoid, tInt, tInt)
	GetPedParachuteLanding   = define("GET_PED_PARACHUTE_LANDING_TYPE", tInt, tInt)
	GetPedParachuteState     = define("GET_PED_PARACHUTE_STATE", tInt, tInt)
	SetPedDropsWeaponsDead   = define("SET_PED_DROPS_WEAPONS_WHEN_DEAD", tVoid, tInt, tBool)
	SetPedSuffersCritHits    = define("SET_PED_SUFFERS_CRITICAL_HITS", tVoid, tInt, tBool)
	CanPedRagdoll            = define("CAN_PED_RAGDOLL", tBool, tInt)
	SetPedCanRagdoll         = define("SET_PED_CAN_RAGDOLL", tVoid, tInt, tBool)
	SetPedDucking            = define("SET_PED_DUCKING", tVoid, tInt, tBool)
	SetPedAsEnemy            = define("SET_PED_AS_ENEMY", tVoid, tInt, tBool)
	SetPedStayInVehJacked    = define("SET_PED_STAY_IN_VEHICLE_WHEN_JACKED", tVoid, tInt, tBool)
	SetPedCanPlayGestures    = define("SET_PED_CAN_PLAY_GESTURE_ANIMS", tVoid, tInt, tBool)
	SetPedCanSwitchWeapon    = define("SET_PED_CAN_SWITCH_WEAPON", tVoid, tInt, tBool)
	SetPedHelmet             = define("SET_PED_HELMET", tVoid, tInt, tBool)
	SetPedCanBeTargetted     = define("SET_PED_CAN_BE_TARGETTED", tVoid, tInt, tBool)
	SetPedCanBeShotInVehicle = define("SET_PED_CAN_BE_SHOT_IN_VEHICLE", tVoid, tInt, tBool)
	SetPedCanBeDraggedOut    = define("SET_PED_CAN_BE_DRAGGED_OUT", tVoid, tInt, tBool)
	SetPedCanBeKnockedOff    = define("SET_PED_CAN_BE_KNOCKED_OFF_VEHICLE", tVoid, tInt, tBool)
	SetBlockingOfNonTempEvts = define("SET_BLOCKING_OF_NON_TEMPORARY_EVENTS", tVoid, tInt, tBool)
	SetPedKeepTask           = define("SET_PED_KEEP_TASK", tVoid, tInt, tBool)
	SetPedDiesWhenInjured    = define("SET_PED_DIES_WHEN_INJURED", tVoid, tInt, tBool)
	SetPedDiesInWater        = define("SET_PED_DIES_IN_WATER", tVoid, tInt, tBool)
	SetPedDiesInSinkingVeh   = define("SET_PED_DIES_IN_SINKING_VEHICLE", tVoid, tInt, tBool)
	SetPedDiesInstantlyWater = define("SET_PED_DIES_INSTANTLY_IN_WATER", tVoid, tInt, tBool)
	SetDriveTaskMaxCruise    = define("SET_DRIVE_TASK_MAX_CRUISE_SPEED", tVoid, tInt, tFloat)
	SetDriveTaskCruiseSpeed  = define("SET_DRIVE_TASK_CRUISE_SPEED", tVoid, tInt, tFloat)
	SetDriveTaskDrivingStyle = define("SET_DRIVE_TASK_DRIVING_STYLE", tVoid, tInt, tInt)
)

// Config flags.
var (
	GetPedConfigFlag = define("GET_PED_CONFIG_FLAG", tBool, tInt, tInt, tBool)
	SetPedConfigFlag = define("SET_PED_CONFIG_FLAG", tVoid, tInt, tInt, tBool)
	SetPedResetFlag  = define("SET_PED_RESET_FLAG", tVoid, tInt, tInt, tBool)
)

// Ped state predicates. All take the ped handle and return bool.
var (
	WasPedKilledByStealth        = define("WAS_PED_KILLED_BY_STEALTH", tBool, tInt)
	WasPedKilledByTakedown       = define("WAS_PED_KILLED_BY_TAKEDOWN", tBool, tInt)
	IsPedJumpingOutOfVehicle     = define("IS_PED_JUMPING_OUT_OF_VEHICLE", tBool, tInt)
	IsPedHuman                   = define("IS_PED_HUMAN", tBool, tInt)
	IsPedAPlayer                 = define("IS_PED_A_PLAYER", tBool, tInt)
	IsPedCuffed                  = define("IS_PED_CUFFED", tBool, tInt)
	IsPedWearingHelmet           = define("IS_PED_WEARING_HELMET", tBool, tInt)
	IsPedRagdoll                 = define("IS_PED_RAGDOLL", tBool, tInt)
	IsPedProne                   = define("IS_PED_PRONE", tBool, tInt)
	IsPedDucking                 = define("IS_PED_DUCKING", tBool, tInt)
	IsPedGettingUp               = define("IS_PED_GETTING_UP", tBool, tInt)
	IsPedClimbing                = define("IS_PED_CLIMBING", tBool, tInt)
	IsPedJumping                 = define("IS_PED_JUMPING", tBool, tInt)
	IsPedFalling                 = define("IS_PED_FALLING", tBool, tInt)
	IsPedStopped                 = define("IS_PED_STOPPED", tBool, tInt)
	IsPedWalking                 = define("IS_PED_WALKING", tBool, tInt)
	IsPedRunning                 = define("IS_PED_RUNNING", tBool, tInt)
	IsPedSprinting               = define("IS_PED_SPRINTING", tBool, tInt)
	IsPedDiving                  = define("IS_PED_DIVING", tBool, tInt)
	IsPedInParachuteFreeFall     = define("IS_PED_IN_PARACHUTE_FREE_FALL", tBool, tInt)
	IsPedSwimming                = define("IS_PED_SWIMMING", tBool, tInt)
	IsPedSwimmingUnderWater      = define("IS_PED_SWIMMING_UNDER_WATER", tBool, tInt)
	IsPedVaulting                = define("IS_PED_VAULTING", tBool, tInt)
	IsPedOnAnyBike               = define("IS_PED_ON_ANY_BIKE", tBool, tInt)
	IsPedOnFoot                  = define("IS_PED_ON_FOOT", tBool, tInt)
	IsPedInAnySub                = define("IS_PED_IN_ANY_SUB", tBool, tInt)
	IsPedInAnyTaxi               = define("IS_PED_IN_ANY_TAXI", tBool, tInt)
	IsPedInAnyTrain              = define("IS_PED_IN_ANY_TRAIN", tBool, tInt)
	IsPedInAnyHeli               = define("IS_PED_IN_ANY_HELI", tBool, tInt)
	IsPedInAnyPlane              = define("IS_PED_IN_ANY_PLANE", tBool, tInt)
	IsPedInFlyingVehicle         = define("IS_PED_IN_FLYING_VEHICLE", tBool, tInt)
	IsPedInAnyBoat               = define("IS_PED_IN_ANY_BOAT", tBool, tInt)
	IsPedInAnyPoliceVehicle      = define("IS_PED_IN_ANY_POLICE_VEHICLE", tBool, tInt)
	IsPedJacking                 = define("IS_PED_JACKING", tBool, tInt)
	IsPedBeingJacked             = define("IS_PED_BEING_JACKED", tBool, tInt)
	IsPedGettingIntoAVehicle     = define("IS_PED_GETTING_INTO_A_VEHICLE", tBool, tInt)
	IsPedTryingToEnterLockedVeh  = define("IS_PED_TRYING_TO_ENTER_A_LOCKED_VEHICLE", tBool, tInt)
	IsPedInjured                 = define("IS_PED_INJURED", tBool, tInt)
	IsPedFleeing                 = define("IS_PED_FLEEING", tBool, tInt)
	IsPedInMeleeCombat           = define("IS_PED_IN_MELEE_COMBAT", tBool, tInt)
	IsPedShooting                = define("IS_PED_SHOOTING", tBool, tInt)
	IsPedReloading               = define("IS_PED_RELOADING", tBool, tInt)
	IsPedDoingDriveBy            = define("IS_PED_DOING_DRIVEBY", tBool, tInt)
	IsPedGoingIntoCover          = define("IS_PED_GOING_INTO_COVER", tBool, tInt)
	IsPedBeingStunned            = define("IS_PED_BEING_STUNNED", tBool, tInt)
	IsPedBeingStealthKilled      = define("IS_PED_BEING_STEALTH_KILLED", tBool, tInt)
	IsPedPerformingStealthKill   = define("IS_PED_PERFORMING_STEALTH_KILL", tBool, tInt)
	IsPedAimingFromCover         = define("IS_PED_AIMING_FROM_COVER", tBool, tInt)
	IsPedInCoverFacingLeft       = define("IS_PED_IN_COVER_FACING_LEFT", tBool, tInt)
	IsPedSittingInAnyVehicle     = define("IS_PED_SITTING_IN_ANY_VEHICLE", tBool, tInt)
	IsPedInGroup                 = define("IS_PED_IN_GROUP", tBool, tInt)
	IsPedInCover                 = define("IS_PED_IN_COVER", tBool, tInt, tBool)
	IsPedInAnyVehicle            = define("IS_PED_IN_ANY_VEHICLE", tBool, tInt, tBool)
	IsPedInVehicle               = define("IS_PED_IN_VEHICLE", tBool, tInt, tInt, tBool)
	IsPedSittingInVehicle        = define("IS_PED_SITTING_IN_VEHICLE", tBool, tInt, tInt)
	IsPedInCombat                = define("IS_PED_IN_COMBAT", tBool, tInt, tInt)
	IsPedHeadtrackingEntity      = define("IS_PED_HEADTRACKING_ENTITY", tBool, tInt, tInt)
	IsPedGroupMember             = define("IS_PED_GROUP_MEMBER", tBool, tInt, tInt)
	IsVehicleSeatFree            = define("IS_VEHICLE_SEAT_FREE", tBool, tInt, tInt)
	GetPedInVehicleSeat          = define("GET_PED_IN_VEHICLE_SEAT", tInt, tInt, tInt)
	GetVehicleNumberOfPassengers = define("GET_VEHICLE_NUMBER_OF_PASSENGERS", tInt, tInt)
)

// Ped relations and actions.
var (
	GetVehiclePedIsIn          = define("GET_VEHICLE_PED_IS_IN", tInt, tInt, tBool)
	GetVehiclePedIsTryingEnter = define("GET_VEHICLE_PED_IS_TRYING_TO_ENTER", tInt, tInt)
	SetPedIntoVehicle          = define("SET_PED_INTO_VEHICLE", tVoid, tInt, tInt, tInt)
	GetPedsJacker              = define("GET_PEDS_JACKER", tInt, tInt)
	GetJackTarget              = define("GET_JACK_TARGET", tInt, tInt)
	GetMeleeTargetForPed       = define("GET_MELEE_TARGET_FOR_PED", tInt, tInt)
	GetPedKiller               = define("_GET_PED_KILLER", tInt, tInt)
	ResetPedVisibleDamage      = define("RESET_PED_VISIBLE_DAMAGE", tVoid, tInt)
	ClearPedBloodDamage        = define("CLEAR_PED_BLOOD_DAMAGE", tVoid, tInt)
	SetPedRandomComponentVar   = define("SET_PED_RANDOM_COMPONENT_VARIATION", tVoid, tInt, tBool)
	SetPedDefaultComponentVar  = define("SET_PED_DEFAULT_COMPONENT_VARIATION", tVoid, tInt)
	ApplyDamageToPed           = define("APPLY_DAMAGE_TO_PED", tVoid, tInt, tInt, tBool)
	GetPedBoneIndex            = define("GET_PED_BONE_INDEX", tInt, tInt, tInt)
	GetPedBoneCoords           = define("GET_PED_BONE_COORDS", tVec, tInt, tInt, tFloat, tFloat, tFloat)
	GetPedLastWeaponImpact     = defineOut("GET_PED_LAST_WEAPON_IMPACT_COORD", tBool, []Kind{tVec}, tInt)
	GivePedHelmet              = define("GIVE_PED_HELMET", tVoid, tInt, tBool, tInt, tInt)
	RemovePedHelmet            = define("REMOVE_PED_HELMET", tVoid, tInt, tBool)
	ForcePedToOpenParachute    = define("FORCE_PED_TO_OPEN_PARACHUTE", tVoid, tInt)
	ClonePed                   = define("CLONE_PED", tInt, tInt, tFloat, tBool, tBool)
)

// Streamed resources.
var (
	RequestAnimSet        = define("REQUEST_ANIM_SET", tVoid, tString)
	HasAnimSetLoaded      = define("HAS_ANIM_SET_LOADED", tBool, tString)
	RequestAnimDict       = define("REQUEST_ANIM_DICT", tVoid, tString)
	HasAnimDictLoaded     = define("HAS_ANIM_DICT_LOADED", tBool, tString)
	SetPedMovementClipset = define("SET_PED_MOVEMENT_CLIPSET", tVoid, tInt, tString, tFloat)
)

// Groups and relationships.
var (
	GetRelationshipBetweenPeds   = define("GET_RELATIONSHIP_BETWEEN_PEDS", tInt, tInt, tInt)
	GetPedRelationshipGroupHash  = define("GET_PED_RELATIONSHIP_GROUP_HASH", tInt, tInt)
	SetPedRelationshipGroupHash  = define("SET_PED_RELATIONSHIP_GROUP_HASH", tVoid, tInt, tInt)
	GetPedGroupIndex             = define("GET_PED_GROUP_INDEX", tInt, tInt)
	SetPedNeverLeavesGroup       = define("SET_PED_NEVER_LEAVES_GROUP", tVoid, tInt, tBool)
	RemovePedFromGroup           = define("REMOVE_PED_FROM_GROUP", tVoid, tInt)
	CreateGroup                  = define("CREATE_GROUP", tInt, tInt)
	DoesGroupExist               = define("DOES_GROUP_EXIST", tBool, tInt)
	GetGroupSize                 = define("GET_GROUP_SIZE", tInt, tInt)
	GetPedAsGroupLeader          = define("GET_PED_AS_GROUP_LEADER", tInt, tInt)
	SetPedAsGroupLeader          = define("SET_PED_AS_GROUP_LEADER", tVoid, tInt, tInt)
	SetPedAsGroupMember          = define("SET_PED_AS_GROUP_MEMBER", tVoid, tInt, tInt)
	SetGroupSeparationRange      = define("SET_GROUP_SEPARATION_RANGE", tVoid, tInt, tFloat)
	SetGroupFormation            = define("SET_GROUP_FORMATION", tVoid, tInt, tInt)
	RemoveGroup                  = define("REMOVE_GROUP", tVoid, tInt)
	AddRelationshipGroup         = defineOut("ADD_RELATIONSHIP_GROUP", tBool, []Kind{tInt}, tString)
	RemoveRelationshipGroup      = define("REMOVE_RELATIONSHIP_GROUP", tVoid, tInt)
	GetRelationshipBetweenGroups = define("GET_RELATIONSHIP_BETWEEN_GROUPS", tInt, tInt, tInt)
	SetRelationshipBetweenGroups = define("SET_RELATIONSHIP_BETWEEN_GROUPS", tVoid, tInt, tInt, tInt)
	ClearRelationshipBetweenGrps = define("CLEAR_RELATIONSHIP_BETWEEN_GROUPS", tVoid, tInt, tInt, tInt)
)

// Tasks.
var (
	ClearPedTasks            = define("CLEAR_PED_TASKS", tVoid, tInt)
	ClearPedTasksImmediately = define("CLEAR_PED_TASKS_IMMEDIATELY", tVoid, tInt)
	ClearPedSecondaryTask    = define("CLEAR_PED_SECONDARY_TASK", tVoid, tInt)
	TaskStandStill           = define("TASK_STAND_STILL", tVoid, tInt, tInt)
	TaskWanderStandard       = define("TASK_WANDER_STANDARD", tVoid, tInt, tFloat, tInt)
	TaskGoStraightToCoord    = define("TASK_GO_STRAIGHT_TO_COORD", tVoid, tInt, tFloat, tFloat, tFloat, tFloat, tInt, tFloat, tFloat)
	TaskCombatPed            = define("TASK_COMBAT_PED", tVoid, tInt, tInt, tInt, tInt)
	TaskSmartFleePed         = define("TASK_SMART_FLEE_PED", tVoid, tInt, tInt, tFloat, tInt, tBool, tBool)
	TaskHandsUp              = define("TASK_HANDS_UP", tVoid, tInt, tInt, tInt, tInt, tBool)
	TaskCower                = define("TASK_COWER", tVoid, tInt, tInt)
	TaskPlayAnim             = define("TASK_PLAY_ANIM", tVoid, tInt, tString, tString, tFloat, tFloat, tInt, tInt, tFloat)
	TaskEnterVehicle         = define("TASK_ENTER_VEHICLE", tVoid, tInt, tInt, tInt, tInt, tFloat, tInt)
	TaskLeaveVehicle         = define("TASK_LEAVE_VEHICLE", tVoid, tInt, tInt, tInt)
	TaskPerformSequence      = define("TASK_PERFORM_SEQUENCE", tVoid, tInt, tInt)
)

// Procedural physics reactions.
var (
	SetPedToRagdoll   = define("SET_PED_TO_RAGDOLL", tVoid, tInt, tInt, tInt, tInt)
	CreateNMMessage   = define("CREATE_NM_MESSAGE", tVoid, tBool, tString)
	SetNMMessageBool  = define("SET_NM_MESSAGE_BOOL", tVoid, tString, tBool)
	SetNMMessageInt   = define("SET_NM_MESSAGE_INT", tVoid, tString, tInt)
	SetNMMessageFloat = define("SET_NM_MESSAGE_FLOAT", tVoid, tString, tFloat)
	SetNMMessageStr   = define("SET_NM_MESSAGE_STRING", tVoid, tString, tString)
	GivePedNMMessage  = define("GIVE_PED_NM_MESSAGE", tVoid, tInt)
)

// Weapons.
var (
	GiveWeaponToPed       = define("GIVE_WEAPON_TO_PED", tVoid, tInt, tInt, tInt, tBool, tBool)
	RemoveWeaponFromPed   = define("REMOVE_WEAPON_FROM_PED", tVoid, tInt, tInt)
	RemoveAllPedWeapons   = define("REMOVE_ALL_PED_WEAPONS", tVoid, tInt, tBool)
	HasPedGotWeapon       = define("HAS_PED_GOT_WEAPON", tBool, tInt, tInt, tBool)
	GetSelectedPedWeapon  = define("GET_SELECTED_PED_WEAPON", tInt, tInt)
	SetCurrentPedWeapon   = define("SET_CURRENT_PED_WEAPON", tVoid, tInt, tInt, tBool)
	GetAmmoInPedWeapon    = define("GET_AMMO_IN_PED_WEAPON", tInt, tInt, tInt)
	SetPedAmmo            = define("SET_PED_AMMO", tVoid, tInt, tInt, tInt)
	GetBestPedWeapon      = define("GET_BEST_PED_WEAPON", tInt, tInt, tBool)
	SetPedDropsWeapon     = define("SET_PED_DROPS_WEAPON", tVoid, tInt)
	GetWeaponClipSize     = define("GET_MAX_AMMO_IN_CLIP", tInt, tInt, tInt, tBool)
	IsPedArmed            = define("IS_PED_ARMED", tBool, tInt, tInt)
	SetPedInfiniteAmmo    = define("SET_PED_INFINITE_AMMO", tVoid, tInt, tBool, tInt)
	SetPedInfiniteAmmoAll = define("SET_PED_INFINITE_AMMO_CLIP", tVoid, tInt, tBool)
)
