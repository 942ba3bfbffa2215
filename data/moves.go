package data

import (
	"errors"
	"fmt"

	"golang.org/x/text/cases"
)

// ErrInvalidMove is returned when a move id has no definition, which
// includes NoMove and the SkipTurn sentinel.
var ErrInvalidMove = errors.New("invalid move id")

// MoveID identifies one of the 165 Generation I moves.
type MoveID int

const (
	// NoMove is the zero value; it never resolves to a definition.
	NoMove MoveID = 0
	// SkipTurn marks a forced pass. It is not a real move.
	SkipTurn MoveID = 0xff
)

const (
	MovePound MoveID = iota + 1
	MoveKarateChop
	MoveDoubleSlap
	MoveCometPunch
	MoveMegaPunch
	MovePayDay
	MoveFirePunch
	MoveIcePunch
	MoveThunderPunch
	MoveScratch
	MoveViseGrip
	MoveGuillotine
	MoveRazorWind
	MoveSwordsDance
	MoveCut
	MoveGust
	MoveWingAttack
	MoveWhirlwind
	MoveFly
	MoveBind
	MoveSlam
	MoveVineWhip
	MoveStomp
	MoveDoubleKick
	MoveMegaKick
	MoveJumpKick
	MoveRollingKick
	MoveSandAttack
	MoveHeadbutt
	MoveHornAttack
	MoveFuryAttack
	MoveHornDrill
	MoveTackle
	MoveBodySlam
	MoveWrap
	MoveTakeDown
	MoveThrash
	MoveDoubleEdge
	MoveTailWhip
	MovePoisonSting
	MoveTwineedle
	MovePinMissile
	MoveLeer
	MoveBite
	MoveGrowl
	MoveRoar
	MoveSing
	MoveSupersonic
	MoveSonicBoom
	MoveDisable
	MoveAcid
	MoveEmber
	MoveFlamethrower
	MoveMist
	MoveWaterGun
	MoveHydroPump
	MoveSurf
	MoveIceBeam
	MoveBlizzard
	MovePsybeam
	MoveBubbleBeam
	MoveAuroraBeam
	MoveHyperBeam
	MovePeck
	MoveDrillPeck
	MoveSubmission
	MoveLowKick
	MoveCounter
	MoveSeismicToss
	MoveStrength
	MoveAbsorb
	MoveMegaDrain
	MoveLeechSeed
	MoveGrowth
	MoveRazorLeaf
	MoveSolarBeam
	MovePoisonPowder
	MoveStunSpore
	MoveSleepPowder
	MovePetalDance
	MoveStringShot
	MoveDragonRage
	MoveFireSpin
	MoveThunderShock
	MoveThunderbolt
	MoveThunderWave
	MoveThunder
	MoveRockThrow
	MoveEarthquake
	MoveFissure
	MoveDig
	MoveToxic
	MoveConfusion
	MovePsychic
	MoveHypnosis
	MoveMeditate
	MoveAgility
	MoveQuickAttack
	MoveRage
	MoveTeleport
	MoveNightShade
	MoveMimic
	MoveScreech
	MoveDoubleTeam
	MoveRecover
	MoveHarden
	MoveMinimize
	MoveSmokescreen
	MoveConfuseRay
	MoveWithdraw
	MoveDefenseCurl
	MoveBarrier
	MoveLightScreen
	MoveHaze
	MoveReflect
	MoveFocusEnergy
	MoveBide
	MoveMetronome
	MoveMirrorMove
	MoveSelfDestruct
	MoveEggBomb
	MoveLick
	MoveSmog
	MoveSludge
	MoveBoneClub
	MoveFireBlast
	MoveWaterfall
	MoveClamp
	MoveSwift
	MoveSkullBash
	MoveSpikeCannon
	MoveConstrict
	MoveAmnesia
	MoveKinesis
	MoveSoftBoiled
	MoveHighJumpKick
	MoveGlare
	MoveDreamEater
	MovePoisonGas
	MoveBarrage
	MoveLeechLife
	MoveLovelyKiss
	MoveSkyAttack
	MoveTransform
	MoveBubble
	MoveDizzyPunch
	MoveSpore
	MoveFlash
	MovePsywave
	MoveSplash
	MoveAcidArmor
	MoveCrabhammer
	MoveExplosion
	MoveFurySwipes
	MoveBonemerang
	MoveRest
	MoveRockSlide
	MoveHyperFang
	MoveSharpen
	MoveConversion
	MoveTriAttack
	MoveSuperFang
	MoveSlash
	MoveSubstitute
	MoveStruggle
)

// NumMoves is the number of real moves in the table.
const NumMoves = 165

// Target is the shape of a move's targeting.
type Target int

const (
	TargetOther     Target = 6
	TargetSelf      Target = 3
	TargetRandomFoe Target = 14
	TargetFoes      Target = 12
)

// Category is the damage class of a move.
type Category int

const (
	Physical Category = iota
	Special
)

func (c Category) String() string {
	if c == Special {
		return "special"
	}
	return "physical"
}

// Move is the static definition of a move.
type Move struct {
	ID       MoveID
	Name     string
	Effect   Effect
	Power    int
	Accuracy int
	Type     Type
	Target   Target
	PP       int
}

// Category derives physical or special from the move's type.
func (m Move) Category() Category {
	if m.Type.Special() {
		return Special
	}
	return Physical
}

// Damaging reports whether the move deals damage at all, either through the
// damage formula or a fixed-damage rule.
func (m Move) Damaging() bool {
	if m.Power > 0 {
		return true
	}
	switch m.Effect {
	case EffectSpecialDamage, EffectSuperFang, EffectCounter, EffectOHKO:
		return true
	}
	return false
}

func (m Move) String() string {
	return m.Name
}

var moves = [NumMoves + 1]Move{
	MovePound:        {Name: "Pound", Effect: EffectNone, Power: 40, Accuracy: 100, Type: Normal, Target: TargetOther, PP: 35},
	MoveKarateChop:   {Name: "Karate Chop", Effect: EffectHighCritical, Power: 50, Accuracy: 100, Type: Normal, Target: TargetOther, PP: 25},
	MoveDoubleSlap:   {Name: "Double Slap", Effect: EffectMultiHit, Power: 15, Accuracy: 85, Type: Normal, Target: TargetOther, PP: 10},
	MoveCometPunch:   {Name: "Comet Punch", Effect: EffectMultiHit, Power: 18, Accuracy: 85, Type: Normal, Target: TargetOther, PP: 15},
	MoveMegaPunch:    {Name: "Mega Punch", Effect: EffectNone, Power: 80, Accuracy: 85, Type: Normal, Target: TargetOther, PP: 20},
	MovePayDay:       {Name: "Pay Day", Effect: EffectPayDay, Power: 40, Accuracy: 100, Type: Normal, Target: TargetOther, PP: 20},
	MoveFirePunch:    {Name: "Fire Punch", Effect: EffectBurnChance1, Power: 75, Accuracy: 100, Type: Fire, Target: TargetOther, PP: 15},
	MoveIcePunch:     {Name: "Ice Punch", Effect: EffectFreezeChance, Power: 75, Accuracy: 100, Type: Ice, Target: TargetOther, PP: 15},
	MoveThunderPunch: {Name: "Thunder Punch", Effect: EffectParalyzeChance1, Power: 75, Accuracy: 100, Type: Electric, Target: TargetOther, PP: 15},
	MoveScratch:      {Name: "Scratch", Effect: EffectNone, Power: 40, Accuracy: 100, Type: Normal, Target: TargetOther, PP: 35},
	MoveViseGrip:     {Name: "Vise Grip", Effect: EffectNone, Power: 55, Accuracy: 100, Type: Normal, Target: TargetOther, PP: 30},
	MoveGuillotine:   {Name: "Guillotine", Effect: EffectOHKO, Power: 0, Accuracy: 30, Type: Normal, Target: TargetOther, PP: 5},
	MoveRazorWind:    {Name: "Razor Wind", Effect: EffectCharge, Power: 80, Accuracy: 75, Type: Normal, Target: TargetOther, PP: 10},
	MoveSwordsDance:  {Name: "Swords Dance", Effect: EffectAttackUp2, Power: 0, Accuracy: 100, Type: Normal, Target: TargetSelf, PP: 30},
	MoveCut:          {Name: "Cut", Effect: EffectNone, Power: 50, Accuracy: 95, Type: Normal, Target: TargetOther, PP: 30},
	MoveGust:         {Name: "Gust", Effect: EffectNone, Power: 40, Accuracy: 100, Type: Normal, Target: TargetOther, PP: 35},
	MoveWingAttack:   {Name: "Wing Attack", Effect: EffectNone, Power: 35, Accuracy: 100, Type: Flying, Target: TargetOther, PP: 35},
	MoveWhirlwind:    {Name: "Whirlwind", Effect: EffectSwitchAndTeleport, Power: 0, Accuracy: 85, Type: Normal, Target: TargetOther, PP: 20},
	MoveFly:          {Name: "Fly", Effect: EffectCharge, Power: 70, Accuracy: 95, Type: Flying, Target: TargetOther, PP: 15},
	MoveBind:         {Name: "Bind", Effect: EffectBinding, Power: 15, Accuracy: 75, Type: Normal, Target: TargetOther, PP: 20},
	MoveSlam:         {Name: "Slam", Effect: EffectNone, Power: 80, Accuracy: 75, Type: Normal, Target: TargetOther, PP: 20},
	MoveVineWhip:     {Name: "Vine Whip", Effect: EffectNone, Power: 35, Accuracy: 100, Type: Grass, Target: TargetOther, PP: 10},
	MoveStomp:        {Name: "Stomp", Effect: EffectFlinchChance2, Power: 65, Accuracy: 100, Type: Normal, Target: TargetOther, PP: 20},
	MoveDoubleKick:   {Name: "Double Kick", Effect: EffectDoubleHit, Power: 30, Accuracy: 100, Type: Fighting, Target: TargetOther, PP: 30},
	MoveMegaKick:     {Name: "Mega Kick", Effect: EffectNone, Power: 120, Accuracy: 75, Type: Normal, Target: TargetOther, PP: 5},
	MoveJumpKick:     {Name: "Jump Kick", Effect: EffectJumpKick, Power: 70, Accuracy: 95, Type: Fighting, Target: TargetOther, PP: 25},
	MoveRollingKick:  {Name: "Rolling Kick", Effect: EffectFlinchChance2, Power: 60, Accuracy: 85, Type: Fighting, Target: TargetOther, PP: 15},
	MoveSandAttack:   {Name: "Sand Attack", Effect: EffectAccuracyDown1, Power: 0, Accuracy: 100, Type: Normal, Target: TargetOther, PP: 15},
	MoveHeadbutt:     {Name: "Headbutt", Effect: EffectFlinchChance1, Power: 70, Accuracy: 100, Type: Normal, Target: TargetOther, PP: 15},
	MoveHornAttack:   {Name: "Horn Attack", Effect: EffectNone, Power: 65, Accuracy: 100, Type: Normal, Target: TargetOther, PP: 25},
	MoveFuryAttack:   {Name: "Fury Attack", Effect: EffectMultiHit, Power: 15, Accuracy: 85, Type: Normal, Target: TargetOther, PP: 20},
	MoveHornDrill:    {Name: "Horn Drill", Effect: EffectOHKO, Power: 0, Accuracy: 30, Type: Normal, Target: TargetOther, PP: 5},
	MoveTackle:       {Name: "Tackle", Effect: EffectNone, Power: 35, Accuracy: 95, Type: Normal, Target: TargetOther, PP: 35},
	MoveBodySlam:     {Name: "Body Slam", Effect: EffectParalyzeChance2, Power: 85, Accuracy: 100, Type: Normal, Target: TargetOther, PP: 15},
	MoveWrap:         {Name: "Wrap", Effect: EffectBinding, Power: 15, Accuracy: 85, Type: Normal, Target: TargetOther, PP: 20},
	MoveTakeDown:     {Name: "Take Down", Effect: EffectRecoil, Power: 90, Accuracy: 85, Type: Normal, Target: TargetOther, PP: 20},
	MoveThrash:       {Name: "Thrash", Effect: EffectThrashing, Power: 90, Accuracy: 100, Type: Normal, Target: TargetRandomFoe, PP: 20},
	MoveDoubleEdge:   {Name: "Double-Edge", Effect: EffectRecoil, Power: 100, Accuracy: 100, Type: Normal, Target: TargetOther, PP: 15},
	MoveTailWhip:     {Name: "Tail Whip", Effect: EffectDefenseDown1, Power: 0, Accuracy: 100, Type: Normal, Target: TargetFoes, PP: 30},
	MovePoisonSting:  {Name: "Poison Sting", Effect: EffectPoisonChance1, Power: 15, Accuracy: 100, Type: Poison, Target: TargetOther, PP: 35},
	MoveTwineedle:    {Name: "Twineedle", Effect: EffectTwineedle, Power: 25, Accuracy: 100, Type: Bug, Target: TargetOther, PP: 20},
	MovePinMissile:   {Name: "Pin Missile", Effect: EffectMultiHit, Power: 14, Accuracy: 85, Type: Bug, Target: TargetOther, PP: 20},
	MoveLeer:         {Name: "Leer", Effect: EffectDefenseDown1, Power: 0, Accuracy: 100, Type: Normal, Target: TargetFoes, PP: 30},
	MoveBite:         {Name: "Bite", Effect: EffectFlinchChance1, Power: 60, Accuracy: 100, Type: Normal, Target: TargetOther, PP: 25},
	MoveGrowl:        {Name: "Growl", Effect: EffectAttackDown1, Power: 0, Accuracy: 100, Type: Normal, Target: TargetFoes, PP: 40},
	MoveRoar:         {Name: "Roar", Effect: EffectSwitchAndTeleport, Power: 0, Accuracy: 100, Type: Normal, Target: TargetOther, PP: 20},
	MoveSing:         {Name: "Sing", Effect: EffectSleep, Power: 0, Accuracy: 55, Type: Normal, Target: TargetOther, PP: 15},
	MoveSupersonic:   {Name: "Supersonic", Effect: EffectConfusion, Power: 0, Accuracy: 55, Type: Normal, Target: TargetOther, PP: 20},
	MoveSonicBoom:    {Name: "Sonic Boom", Effect: EffectSpecialDamage, Power: 0, Accuracy: 90, Type: Normal, Target: TargetOther, PP: 20},
	MoveDisable:      {Name: "Disable", Effect: EffectDisable, Power: 0, Accuracy: 55, Type: Normal, Target: TargetOther, PP: 20},
	MoveAcid:         {Name: "Acid", Effect: EffectDefenseDownChance, Power: 40, Accuracy: 100, Type: Poison, Target: TargetOther, PP: 30},
	MoveEmber:        {Name: "Ember", Effect: EffectBurnChance1, Power: 40, Accuracy: 100, Type: Fire, Target: TargetOther, PP: 25},
	MoveFlamethrower: {Name: "Flamethrower", Effect: EffectBurnChance1, Power: 95, Accuracy: 100, Type: Fire, Target: TargetOther, PP: 15},
	MoveMist:         {Name: "Mist", Effect: EffectMist, Power: 0, Accuracy: 100, Type: Ice, Target: TargetSelf, PP: 30},
	MoveWaterGun:     {Name: "Water Gun", Effect: EffectNone, Power: 40, Accuracy: 100, Type: Water, Target: TargetOther, PP: 25},
	MoveHydroPump:    {Name: "Hydro Pump", Effect: EffectNone, Power: 120, Accuracy: 80, Type: Water, Target: TargetOther, PP: 5},
	MoveSurf:         {Name: "Surf", Effect: EffectNone, Power: 95, Accuracy: 100, Type: Water, Target: TargetOther, PP: 15},
	MoveIceBeam:      {Name: "Ice Beam", Effect: EffectFreezeChance, Power: 95, Accuracy: 100, Type: Ice, Target: TargetOther, PP: 10},
	MoveBlizzard:     {Name: "Blizzard", Effect: EffectFreezeChance, Power: 120, Accuracy: 90, Type: Ice, Target: TargetOther, PP: 5},
	MovePsybeam:      {Name: "Psybeam", Effect: EffectConfusionChance, Power: 65, Accuracy: 100, Type: Psychic, Target: TargetOther, PP: 20},
	MoveBubbleBeam:   {Name: "Bubble Beam", Effect: EffectSpeedDownChance, Power: 65, Accuracy: 100, Type: Water, Target: TargetOther, PP: 20},
	MoveAuroraBeam:   {Name: "Aurora Beam", Effect: EffectAttackDownChance, Power: 65, Accuracy: 100, Type: Ice, Target: TargetOther, PP: 20},
	MoveHyperBeam:    {Name: "Hyper Beam", Effect: EffectHyperBeam, Power: 150, Accuracy: 90, Type: Normal, Target: TargetOther, PP: 5},
	MovePeck:         {Name: "Peck", Effect: EffectNone, Power: 35, Accuracy: 100, Type: Flying, Target: TargetOther, PP: 35},
	MoveDrillPeck:    {Name: "Drill Peck", Effect: EffectNone, Power: 80, Accuracy: 100, Type: Flying, Target: TargetOther, PP: 20},
	MoveSubmission:   {Name: "Submission", Effect: EffectRecoil, Power: 80, Accuracy: 80, Type: Fighting, Target: TargetOther, PP: 25},
	MoveLowKick:      {Name: "Low Kick", Effect: EffectFlinchChance2, Power: 50, Accuracy: 90, Type: Fighting, Target: TargetOther, PP: 20},
	MoveCounter:      {Name: "Counter", Effect: EffectCounter, Power: 0, Accuracy: 100, Type: Fighting, Target: TargetOther, PP: 20},
	MoveSeismicToss:  {Name: "Seismic Toss", Effect: EffectSpecialDamage, Power: 0, Accuracy: 100, Type: Fighting, Target: TargetOther, PP: 20},
	MoveStrength:     {Name: "Strength", Effect: EffectNone, Power: 80, Accuracy: 100, Type: Normal, Target: TargetOther, PP: 15},
	MoveAbsorb:       {Name: "Absorb", Effect: EffectDrainHP, Power: 20, Accuracy: 100, Type: Grass, Target: TargetOther, PP: 20},
	MoveMegaDrain:    {Name: "Mega Drain", Effect: EffectDrainHP, Power: 40, Accuracy: 100, Type: Grass, Target: TargetOther, PP: 10},
	MoveLeechSeed:    {Name: "Leech Seed", Effect: EffectLeechSeed, Power: 0, Accuracy: 90, Type: Grass, Target: TargetOther, PP: 10},
	MoveGrowth:       {Name: "Growth", Effect: EffectSpecialUp1, Power: 0, Accuracy: 100, Type: Normal, Target: TargetSelf, PP: 40},
	MoveRazorLeaf:    {Name: "Razor Leaf", Effect: EffectHighCritical, Power: 55, Accuracy: 95, Type: Grass, Target: TargetOther, PP: 25},
	MoveSolarBeam:    {Name: "Solar Beam", Effect: EffectCharge, Power: 120, Accuracy: 100, Type: Grass, Target: TargetOther, PP: 10},
	MovePoisonPowder: {Name: "Poison Powder", Effect: EffectPoison, Power: 0, Accuracy: 75, Type: Poison, Target: TargetOther, PP: 35},
	MoveStunSpore:    {Name: "Stun Spore", Effect: EffectParalyze, Power: 0, Accuracy: 75, Type: Grass, Target: TargetOther, PP: 30},
	MoveSleepPowder:  {Name: "Sleep Powder", Effect: EffectSleep, Power: 0, Accuracy: 75, Type: Grass, Target: TargetOther, PP: 15},
	MovePetalDance:   {Name: "Petal Dance", Effect: EffectThrashing, Power: 70, Accuracy: 100, Type: Grass, Target: TargetRandomFoe, PP: 20},
	MoveStringShot:   {Name: "String Shot", Effect: EffectSpeedDown1, Power: 0, Accuracy: 95, Type: Bug, Target: TargetOther, PP: 40},
	MoveDragonRage:   {Name: "Dragon Rage", Effect: EffectSpecialDamage, Power: 0, Accuracy: 100, Type: Dragon, Target: TargetOther, PP: 10},
	MoveFireSpin:     {Name: "Fire Spin", Effect: EffectBinding, Power: 15, Accuracy: 70, Type: Fire, Target: TargetOther, PP: 15},
	MoveThunderShock: {Name: "Thunder Shock", Effect: EffectParalyzeChance1, Power: 40, Accuracy: 100, Type: Electric, Target: TargetOther, PP: 30},
	MoveThunderbolt:  {Name: "Thunderbolt", Effect: EffectParalyzeChance1, Power: 95, Accuracy: 100, Type: Electric, Target: TargetOther, PP: 15},
	MoveThunderWave:  {Name: "Thunder Wave", Effect: EffectParalyze, Power: 0, Accuracy: 100, Type: Electric, Target: TargetOther, PP: 20},
	MoveThunder:      {Name: "Thunder", Effect: EffectParalyzeChance1, Power: 120, Accuracy: 70, Type: Electric, Target: TargetOther, PP: 10},
	MoveRockThrow:    {Name: "Rock Throw", Effect: EffectNone, Power: 50, Accuracy: 65, Type: Rock, Target: TargetOther, PP: 15},
	MoveEarthquake:   {Name: "Earthquake", Effect: EffectNone, Power: 100, Accuracy: 100, Type: Ground, Target: TargetOther, PP: 10},
	MoveFissure:      {Name: "Fissure", Effect: EffectOHKO, Power: 0, Accuracy: 30, Type: Ground, Target: TargetOther, PP: 5},
	MoveDig:          {Name: "Dig", Effect: EffectCharge, Power: 100, Accuracy: 100, Type: Ground, Target: TargetOther, PP: 10},
	MoveToxic:        {Name: "Toxic", Effect: EffectPoison, Power: 0, Accuracy: 85, Type: Poison, Target: TargetOther, PP: 10},
	MoveConfusion:    {Name: "Confusion", Effect: EffectConfusionChance, Power: 50, Accuracy: 100, Type: Psychic, Target: TargetOther, PP: 25},
	MovePsychic:      {Name: "Psychic", Effect: EffectSpecialDownChance, Power: 90, Accuracy: 100, Type: Psychic, Target: TargetOther, PP: 10},
	MoveHypnosis:     {Name: "Hypnosis", Effect: EffectSleep, Power: 0, Accuracy: 60, Type: Psychic, Target: TargetOther, PP: 20},
	MoveMeditate:     {Name: "Meditate", Effect: EffectAttackUp1, Power: 0, Accuracy: 100, Type: Psychic, Target: TargetSelf, PP: 40},
	MoveAgility:      {Name: "Agility", Effect: EffectSpeedUp2, Power: 0, Accuracy: 100, Type: Psychic, Target: TargetSelf, PP: 30},
	MoveQuickAttack:  {Name: "Quick Attack", Effect: EffectNone, Power: 40, Accuracy: 100, Type: Normal, Target: TargetOther, PP: 30},
	MoveRage:         {Name: "Rage", Effect: EffectRage, Power: 20, Accuracy: 100, Type: Normal, Target: TargetOther, PP: 20},
	MoveTeleport:     {Name: "Teleport", Effect: EffectSwitchAndTeleport, Power: 0, Accuracy: 100, Type: Psychic, Target: TargetSelf, PP: 20},
	MoveNightShade:   {Name: "Night Shade", Effect: EffectSpecialDamage, Power: 0, Accuracy: 100, Type: Ghost, Target: TargetOther, PP: 15},
	MoveMimic:        {Name: "Mimic", Effect: EffectMimic, Power: 0, Accuracy: 100, Type: Normal, Target: TargetOther, PP: 10},
	MoveScreech:      {Name: "Screech", Effect: EffectDefenseDown2, Power: 0, Accuracy: 85, Type: Normal, Target: TargetOther, PP: 40},
	MoveDoubleTeam:   {Name: "Double Team", Effect: EffectEvasionUp1, Power: 0, Accuracy: 100, Type: Normal, Target: TargetSelf, PP: 15},
	MoveRecover:      {Name: "Recover", Effect: EffectHeal, Power: 0, Accuracy: 100, Type: Normal, Target: TargetSelf, PP: 20},
	MoveHarden:       {Name: "Harden", Effect: EffectDefenseUp1, Power: 0, Accuracy: 100, Type: Normal, Target: TargetSelf, PP: 30},
	MoveMinimize:     {Name: "Minimize", Effect: EffectEvasionUp1, Power: 0, Accuracy: 100, Type: Normal, Target: TargetSelf, PP: 20},
	MoveSmokescreen:  {Name: "Smokescreen", Effect: EffectAccuracyDown1, Power: 0, Accuracy: 100, Type: Normal, Target: TargetOther, PP: 20},
	MoveConfuseRay:   {Name: "Confuse Ray", Effect: EffectConfusion, Power: 0, Accuracy: 100, Type: Ghost, Target: TargetOther, PP: 10},
	MoveWithdraw:     {Name: "Withdraw", Effect: EffectDefenseUp1, Power: 0, Accuracy: 100, Type: Water, Target: TargetSelf, PP: 40},
	MoveDefenseCurl:  {Name: "Defense Curl", Effect: EffectDefenseUp1, Power: 0, Accuracy: 100, Type: Normal, Target: TargetSelf, PP: 40},
	MoveBarrier:      {Name: "Barrier", Effect: EffectDefenseUp2, Power: 0, Accuracy: 100, Type: Psychic, Target: TargetSelf, PP: 30},
	MoveLightScreen:  {Name: "Light Screen", Effect: EffectLightScreen, Power: 0, Accuracy: 100, Type: Psychic, Target: TargetSelf, PP: 30},
	MoveHaze:         {Name: "Haze", Effect: EffectHaze, Power: 0, Accuracy: 100, Type: Ice, Target: TargetSelf, PP: 30},
	MoveReflect:      {Name: "Reflect", Effect: EffectReflect, Power: 0, Accuracy: 100, Type: Psychic, Target: TargetSelf, PP: 20},
	MoveFocusEnergy:  {Name: "Focus Energy", Effect: EffectFocusEnergy, Power: 0, Accuracy: 100, Type: Normal, Target: TargetSelf, PP: 30},
	MoveBide:         {Name: "Bide", Effect: EffectBide, Power: 0, Accuracy: 100, Type: Normal, Target: TargetSelf, PP: 10},
	MoveMetronome:    {Name: "Metronome", Effect: EffectMetronome, Power: 0, Accuracy: 100, Type: Normal, Target: TargetSelf, PP: 10},
	MoveMirrorMove:   {Name: "Mirror Move", Effect: EffectMirrorMove, Power: 0, Accuracy: 100, Type: Flying, Target: TargetSelf, PP: 20},
	MoveSelfDestruct: {Name: "Self-Destruct", Effect: EffectExplode, Power: 130, Accuracy: 100, Type: Normal, Target: TargetOther, PP: 5},
	MoveEggBomb:      {Name: "Egg Bomb", Effect: EffectNone, Power: 100, Accuracy: 75, Type: Normal, Target: TargetOther, PP: 10},
	MoveLick:         {Name: "Lick", Effect: EffectParalyzeChance2, Power: 20, Accuracy: 100, Type: Ghost, Target: TargetOther, PP: 30},
	MoveSmog:         {Name: "Smog", Effect: EffectPoisonChance2, Power: 20, Accuracy: 70, Type: Poison, Target: TargetOther, PP: 20},
	MoveSludge:       {Name: "Sludge", Effect: EffectPoisonChance2, Power: 65, Accuracy: 100, Type: Poison, Target: TargetOther, PP: 20},
	MoveBoneClub:     {Name: "Bone Club", Effect: EffectFlinchChance1, Power: 65, Accuracy: 85, Type: Ground, Target: TargetOther, PP: 20},
	MoveFireBlast:    {Name: "Fire Blast", Effect: EffectBurnChance2, Power: 120, Accuracy: 85, Type: Fire, Target: TargetOther, PP: 5},
	MoveWaterfall:    {Name: "Waterfall", Effect: EffectNone, Power: 80, Accuracy: 100, Type: Water, Target: TargetOther, PP: 15},
	MoveClamp:        {Name: "Clamp", Effect: EffectBinding, Power: 35, Accuracy: 75, Type: Water, Target: TargetOther, PP: 10},
	MoveSwift:        {Name: "Swift", Effect: EffectSwift, Power: 60, Accuracy: 100, Type: Normal, Target: TargetOther, PP: 20},
	MoveSkullBash:    {Name: "Skull Bash", Effect: EffectCharge, Power: 100, Accuracy: 100, Type: Normal, Target: TargetOther, PP: 15},
	MoveSpikeCannon:  {Name: "Spike Cannon", Effect: EffectMultiHit, Power: 20, Accuracy: 100, Type: Normal, Target: TargetOther, PP: 15},
	MoveConstrict:    {Name: "Constrict", Effect: EffectSpeedDownChanceLow, Power: 10, Accuracy: 100, Type: Normal, Target: TargetOther, PP: 35},
	MoveAmnesia:      {Name: "Amnesia", Effect: EffectSpecialUp2, Power: 0, Accuracy: 100, Type: Psychic, Target: TargetSelf, PP: 20},
	MoveKinesis:      {Name: "Kinesis", Effect: EffectAccuracyDown1, Power: 0, Accuracy: 80, Type: Psychic, Target: TargetOther, PP: 15},
	MoveSoftBoiled:   {Name: "Soft-Boiled", Effect: EffectHeal, Power: 0, Accuracy: 100, Type: Normal, Target: TargetSelf, PP: 10},
	MoveHighJumpKick: {Name: "Hi Jump Kick", Effect: EffectJumpKick, Power: 85, Accuracy: 90, Type: Fighting, Target: TargetOther, PP: 20},
	MoveGlare:        {Name: "Glare", Effect: EffectParalyze, Power: 0, Accuracy: 75, Type: Normal, Target: TargetOther, PP: 30},
	MoveDreamEater:   {Name: "Dream Eater", Effect: EffectDreamEater, Power: 100, Accuracy: 100, Type: Psychic, Target: TargetOther, PP: 15},
	MovePoisonGas:    {Name: "Poison Gas", Effect: EffectPoison, Power: 0, Accuracy: 55, Type: Poison, Target: TargetOther, PP: 40},
	MoveBarrage:      {Name: "Barrage", Effect: EffectMultiHit, Power: 15, Accuracy: 85, Type: Normal, Target: TargetOther, PP: 20},
	MoveLeechLife:    {Name: "Leech Life", Effect: EffectDrainHP, Power: 20, Accuracy: 100, Type: Bug, Target: TargetOther, PP: 15},
	MoveLovelyKiss:   {Name: "Lovely Kiss", Effect: EffectSleep, Power: 0, Accuracy: 75, Type: Normal, Target: TargetOther, PP: 10},
	MoveSkyAttack:    {Name: "Sky Attack", Effect: EffectCharge, Power: 140, Accuracy: 90, Type: Flying, Target: TargetOther, PP: 5},
	MoveTransform:    {Name: "Transform", Effect: EffectTransform, Power: 0, Accuracy: 100, Type: Normal, Target: TargetOther, PP: 10},
	MoveBubble:       {Name: "Bubble", Effect: EffectSpeedDownChance, Power: 20, Accuracy: 100, Type: Water, Target: TargetOther, PP: 30},
	MoveDizzyPunch:   {Name: "Dizzy Punch", Effect: EffectNone, Power: 70, Accuracy: 100, Type: Normal, Target: TargetOther, PP: 10},
	MoveSpore:        {Name: "Spore", Effect: EffectSleep, Power: 0, Accuracy: 100, Type: Grass, Target: TargetOther, PP: 15},
	MoveFlash:        {Name: "Flash", Effect: EffectAccuracyDown1, Power: 0, Accuracy: 70, Type: Normal, Target: TargetOther, PP: 20},
	MovePsywave:      {Name: "Psywave", Effect: EffectSpecialDamage, Power: 0, Accuracy: 80, Type: Psychic, Target: TargetOther, PP: 15},
	MoveSplash:       {Name: "Splash", Effect: EffectSplash, Power: 0, Accuracy: 100, Type: Normal, Target: TargetSelf, PP: 40},
	MoveAcidArmor:    {Name: "Acid Armor", Effect: EffectDefenseUp2, Power: 0, Accuracy: 100, Type: Poison, Target: TargetSelf, PP: 40},
	MoveCrabhammer:   {Name: "Crabhammer", Effect: EffectHighCritical, Power: 90, Accuracy: 85, Type: Water, Target: TargetOther, PP: 10},
	MoveExplosion:    {Name: "Explosion", Effect: EffectExplode, Power: 170, Accuracy: 100, Type: Normal, Target: TargetOther, PP: 5},
	MoveFurySwipes:   {Name: "Fury Swipes", Effect: EffectMultiHit, Power: 18, Accuracy: 80, Type: Normal, Target: TargetOther, PP: 15},
	MoveBonemerang:   {Name: "Bonemerang", Effect: EffectDoubleHit, Power: 50, Accuracy: 90, Type: Ground, Target: TargetOther, PP: 10},
	MoveRest:         {Name: "Rest", Effect: EffectHeal, Power: 0, Accuracy: 100, Type: Psychic, Target: TargetSelf, PP: 10},
	MoveRockSlide:    {Name: "Rock Slide", Effect: EffectNone, Power: 75, Accuracy: 90, Type: Rock, Target: TargetOther, PP: 10},
	MoveHyperFang:    {Name: "Hyper Fang", Effect: EffectFlinchChance1, Power: 80, Accuracy: 90, Type: Normal, Target: TargetOther, PP: 15},
	MoveSharpen:      {Name: "Sharpen", Effect: EffectAttackUp1, Power: 0, Accuracy: 100, Type: Normal, Target: TargetSelf, PP: 30},
	MoveConversion:   {Name: "Conversion", Effect: EffectConversion, Power: 0, Accuracy: 100, Type: Normal, Target: TargetOther, PP: 30},
	MoveTriAttack:    {Name: "Tri Attack", Effect: EffectNone, Power: 80, Accuracy: 100, Type: Normal, Target: TargetOther, PP: 10},
	MoveSuperFang:    {Name: "Super Fang", Effect: EffectSuperFang, Power: 0, Accuracy: 90, Type: Normal, Target: TargetOther, PP: 10},
	MoveSlash:        {Name: "Slash", Effect: EffectHighCritical, Power: 70, Accuracy: 100, Type: Normal, Target: TargetOther, PP: 20},
	MoveSubstitute:   {Name: "Substitute", Effect: EffectSubstitute, Power: 0, Accuracy: 100, Type: Normal, Target: TargetSelf, PP: 10},
	MoveStruggle:     {Name: "Struggle", Effect: EffectRecoil, Power: 50, Accuracy: 100, Type: Normal, Target: TargetRandomFoe, PP: 10},
}

func init() {
	for id := range moves {
		moves[id].ID = MoveID(id)
	}
}

// Valid reports whether id names a real move.
func (id MoveID) Valid() bool {
	return id >= 1 && id <= NumMoves
}

func (id MoveID) String() string {
	switch {
	case id.Valid():
		return moves[id].Name
	case id == SkipTurn:
		return "(skip)"
	case id == NoMove:
		return "(none)"
	}
	return fmt.Sprintf("MoveID(%d)", int(id))
}

// LookupMove returns the definition of id.
func LookupMove(id MoveID) (Move, error) {
	if !id.Valid() {
		return Move{}, fmt.Errorf("lookup %d: %w", int(id), ErrInvalidMove)
	}
	return moves[id], nil
}

// MustMove is LookupMove for ids known at compile time.
func MustMove(id MoveID) Move {
	m, err := LookupMove(id)
	if err != nil {
		panic(err)
	}
	return m
}

// BasePP returns the starting PP of id.
func BasePP(id MoveID) (int, error) {
	m, err := LookupMove(id)
	if err != nil {
		return 0, err
	}
	return m.PP, nil
}

// MoveByName finds a move by display name, ignoring case, spaces and dashes.
func MoveByName(name string) (Move, error) {
	key := nameKey(name)
	for _, m := range moves[1:] {
		if nameKey(m.Name) == key {
			return m, nil
		}
	}
	return Move{}, fmt.Errorf("move %q: %w", name, ErrInvalidMove)
}

// MetronomePool lists every move Metronome may call: all real moves except
// Metronome itself and Struggle.
func MetronomePool() []MoveID {
	pool := make([]MoveID, 0, NumMoves-2)
	for id := MoveID(1); id <= NumMoves; id++ {
		if id == MoveMetronome || id == MoveStruggle {
			continue
		}
		pool = append(pool, id)
	}
	return pool
}

func nameKey(s string) string {
	out := make([]rune, 0, len(s))
	for _, r := range cases.Fold().String(s) {
		switch r {
		case ' ', '-', '_', '.', '\'':
			continue
		}
		out = append(out, r)
	}
	return string(out)
}
