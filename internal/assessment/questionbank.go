package assessment

import (
	"math/rand"

	"github.com/maya/wellspring/internal/types"
)

// SessionSize is the number of questions presented in one assessment session.
const SessionSize = 8

// Bank returns the full question bank for a mood, or the generic fallback set
// for MoodUnknown. The returned slice is shared static data; callers must not
// mutate it. Scoring should resolve answers against the full bank so that any
// presented subset is covered.
func Bank(mood types.Mood) []types.AssessmentQuestion {
	if bank, ok := questionBanks[mood]; ok {
		return bank
	}
	return fallbackQuestions
}

// Draw returns a random SessionSize-question session from the mood's bank.
// The fallback set is returned as-is since it is already session-sized.
func Draw(mood types.Mood) []types.AssessmentQuestion {
	bank := Bank(mood)
	if len(bank) <= SessionSize {
		return bank
	}
	shuffled := make([]types.AssessmentQuestion, len(bank))
	copy(shuffled, bank)
	rand.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	return shuffled[:SessionSize]
}

// fallbackQuestions is the generic set used when no onboarding mood is known.
var fallbackQuestions = []types.AssessmentQuestion{
	{ID: "q1", Text: "How often do you feel overwhelmed by your responsibilities?", Category: types.CategoryStress},
	{ID: "q2", Text: "When facing a difficult situation, how likely are you to avoid it?", Category: types.CategoryBehavior},
	{ID: "q3", Text: "How frequently do you compare yourself to others?", Category: types.CategoryCognitive},
	{ID: "q4", Text: "How often do deadlines create anxiety for you?", Category: types.CategoryStress},
	{ID: "q5", Text: "How much do you internalize pressure rather than expressing it?", Category: types.CategoryCognitive},
	{ID: "q6", Text: "How often do you set expectations for yourself that feel unreachable?", Category: types.CategoryBehavior},
	{ID: "q7", Text: "How affected are you by uncertainty about the future?", Category: types.CategoryCognitive},
	{ID: "q8", Text: "How often do you put off self-care when feeling stressed?", Category: types.CategoryBehavior},
}

// questionBanks holds the personalized 16-question banks per onboarding mood.
var questionBanks = map[types.Mood][]types.AssessmentQuestion{
	types.MoodOverwhelmed: {
		{ID: "ov1", Text: "How often do you feel like you have too many things to handle at once?", Category: types.CategoryStress},
		{ID: "ov2", Text: "When tasks pile up, how likely are you to freeze rather than act?", Category: types.CategoryBehavior},
		{ID: "ov3", Text: "How frequently do you think 'I can't handle this' when facing challenges?", Category: types.CategoryCognitive},
		{ID: "ov4", Text: "How often do you feel physically tense or exhausted from mental load?", Category: types.CategoryStress},
		{ID: "ov5", Text: "How much do you catastrophize about what might go wrong?", Category: types.CategoryCognitive},
		{ID: "ov6", Text: "How often do you avoid making decisions when feeling overwhelmed?", Category: types.CategoryBehavior},
		{ID: "ov7", Text: "How frequently do you feel like everyone else handles pressure better than you?", Category: types.CategoryCognitive},
		{ID: "ov8", Text: "How often do you neglect basic needs when overwhelmed?", Category: types.CategoryBehavior},
		{ID: "ov9", Text: "How frequently do you feel paralyzed when trying to prioritize tasks?", Category: types.CategoryCognitive},
		{ID: "ov10", Text: "How often do you experience headaches or tension from stress?", Category: types.CategoryStress},
		{ID: "ov11", Text: "How much do you withdraw from people when feeling swamped?", Category: types.CategoryBehavior},
		{ID: "ov12", Text: "How frequently do you feel like you're drowning in expectations?", Category: types.CategoryCognitive},
		{ID: "ov13", Text: "How often does your mind race with all the things you need to do?", Category: types.CategoryStress},
		{ID: "ov14", Text: "How much do you struggle to ask for help when you need it?", Category: types.CategoryBehavior},
		{ID: "ov15", Text: "How frequently do you tell yourself you should be able to handle more?", Category: types.CategoryCognitive},
		{ID: "ov16", Text: "How often do you feel your heart racing from overwhelm?", Category: types.CategoryStress},
	},
	types.MoodLonely: {
		{ID: "ln1", Text: "How often do you feel like others don't truly understand you?", Category: types.CategoryCognitive},
		{ID: "ln2", Text: "How frequently do you avoid social situations even when invited?", Category: types.CategoryBehavior},
		{ID: "ln3", Text: "How much do you feel disconnected even when around people?", Category: types.CategoryStress},
		{ID: "ln4", Text: "How often do you think you're bothering others by reaching out?", Category: types.CategoryCognitive},
		{ID: "ln5", Text: "How frequently do you scroll social media feeling more isolated?", Category: types.CategoryBehavior},
		{ID: "ln6", Text: "How much do you worry that your relationships are one-sided?", Category: types.CategoryStress},
		{ID: "ln7", Text: "How often do you feel like you're pretending to be okay around others?", Category: types.CategoryCognitive},
		{ID: "ln8", Text: "How frequently do you choose to stay home rather than connect?", Category: types.CategoryBehavior},
		{ID: "ln9", Text: "How often do you feel invisible in group settings?", Category: types.CategoryCognitive},
		{ID: "ln10", Text: "How much do you crave connection but fear rejection?", Category: types.CategoryStress},
		{ID: "ln11", Text: "How frequently do you cancel plans at the last minute?", Category: types.CategoryBehavior},
		{ID: "ln12", Text: "How often do you think no one would notice if you disappeared?", Category: types.CategoryCognitive},
		{ID: "ln13", Text: "How much does loneliness physically hurt or ache?", Category: types.CategoryStress},
		{ID: "ln14", Text: "How frequently do you compare your social life to others'?", Category: types.CategoryBehavior},
		{ID: "ln15", Text: "How often do you feel like an outsider even with close friends?", Category: types.CategoryCognitive},
		{ID: "ln16", Text: "How much do you struggle with silence when alone?", Category: types.CategoryStress},
	},
	types.MoodBurnedOut: {
		{ID: "bo1", Text: "How often do you feel emotionally drained before the day even starts?", Category: types.CategoryStress},
		{ID: "bo2", Text: "How frequently do you go through the motions without feeling engaged?", Category: types.CategoryBehavior},
		{ID: "bo3", Text: "How much do you feel like you've lost your sense of purpose?", Category: types.CategoryCognitive},
		{ID: "bo4", Text: "How often do you feel resentful about your responsibilities?", Category: types.CategoryStress},
		{ID: "bo5", Text: "How frequently do you think 'I used to care more about this'?", Category: types.CategoryCognitive},
		{ID: "bo6", Text: "How much do you procrastinate on things that used to motivate you?", Category: types.CategoryBehavior},
		{ID: "bo7", Text: "How often do you feel like you're running on empty?", Category: types.CategoryCognitive},
		{ID: "bo8", Text: "How frequently do you fantasize about escaping your current situation?", Category: types.CategoryBehavior},
		{ID: "bo9", Text: "How often do you feel cynical about things that used to excite you?", Category: types.CategoryCognitive},
		{ID: "bo10", Text: "How much do you feel physically exhausted despite adequate rest?", Category: types.CategoryStress},
		{ID: "bo11", Text: "How frequently do you go through your day on autopilot?", Category: types.CategoryBehavior},
		{ID: "bo12", Text: "How often do you question if anything you do matters?", Category: types.CategoryCognitive},
		{ID: "bo13", Text: "How much does the thought of work make you feel dread?", Category: types.CategoryStress},
		{ID: "bo14", Text: "How frequently do you isolate yourself from support systems?", Category: types.CategoryBehavior},
		{ID: "bo15", Text: "How often do you feel detached from your own life?", Category: types.CategoryCognitive},
		{ID: "bo16", Text: "How much do you feel emotionally numb or empty?", Category: types.CategoryStress},
	},
	types.MoodJustChecking: {
		{ID: "jc1", Text: "How often do you reflect on your mental and emotional patterns?", Category: types.CategoryCognitive},
		{ID: "jc2", Text: "How frequently do you take proactive steps to maintain your wellbeing?", Category: types.CategoryBehavior},
		{ID: "jc3", Text: "How much do you notice stress before it becomes overwhelming?", Category: types.CategoryStress},
		{ID: "jc4", Text: "How often do you check in with yourself about your needs?", Category: types.CategoryCognitive},
		{ID: "jc5", Text: "How frequently do you adjust your habits based on how you're feeling?", Category: types.CategoryBehavior},
		{ID: "jc6", Text: "How much do you feel in tune with your emotional fluctuations?", Category: types.CategoryStress},
		{ID: "jc7", Text: "How often do you seek growth opportunities for self-improvement?", Category: types.CategoryCognitive},
		{ID: "jc8", Text: "How frequently do you maintain boundaries that protect your energy?", Category: types.CategoryBehavior},
		{ID: "jc9", Text: "How often do you celebrate small wins in your personal growth?", Category: types.CategoryCognitive},
		{ID: "jc10", Text: "How much do you feel balanced in your daily routines?", Category: types.CategoryStress},
		{ID: "jc11", Text: "How frequently do you try new wellness practices to see what works?", Category: types.CategoryBehavior},
		{ID: "jc12", Text: "How often do you journal or reflect on your emotions?", Category: types.CategoryCognitive},
		{ID: "jc13", Text: "How much do you prioritize sleep and rest as self-care?", Category: types.CategoryStress},
		{ID: "jc14", Text: "How frequently do you reach out to others for meaningful connection?", Category: types.CategoryBehavior},
		{ID: "jc15", Text: "How often do you practice gratitude or mindfulness?", Category: types.CategoryCognitive},
		{ID: "jc16", Text: "How much do you feel energized by your current habits?", Category: types.CategoryStress},
	},
	types.MoodAnxious: {
		{ID: "ax1", Text: "How often do you worry about things that haven't happened yet?", Category: types.CategoryCognitive},
		{ID: "ax2", Text: "How frequently do you avoid situations that make you nervous?", Category: types.CategoryBehavior},
		{ID: "ax3", Text: "How much do physical symptoms of anxiety affect your daily life?", Category: types.CategoryStress},
		{ID: "ax4", Text: "How often do you have racing thoughts that are hard to control?", Category: types.CategoryCognitive},
		{ID: "ax5", Text: "How frequently do you seek excessive reassurance from others?", Category: types.CategoryBehavior},
		{ID: "ax6", Text: "How much does uncertainty about outcomes create tension for you?", Category: types.CategoryStress},
		{ID: "ax7", Text: "How often do you imagine worst-case scenarios?", Category: types.CategoryCognitive},
		{ID: "ax8", Text: "How frequently do you double-check things due to worry?", Category: types.CategoryBehavior},
		{ID: "ax9", Text: "How often do you feel a sense of impending doom?", Category: types.CategoryCognitive},
		{ID: "ax10", Text: "How much do you experience chest tightness or shortness of breath?", Category: types.CategoryStress},
		{ID: "ax11", Text: "How frequently do you cancel plans because anxiety feels too big?", Category: types.CategoryBehavior},
		{ID: "ax12", Text: "How often do you replay conversations wondering if you said something wrong?", Category: types.CategoryCognitive},
		{ID: "ax13", Text: "How much does your stomach feel upset when you're anxious?", Category: types.CategoryStress},
		{ID: "ax14", Text: "How frequently do you overanalyze every small detail?", Category: types.CategoryBehavior},
		{ID: "ax15", Text: "How often do you worry that something bad is about to happen?", Category: types.CategoryCognitive},
		{ID: "ax16", Text: "How much do you feel restless or on edge during the day?", Category: types.CategoryStress},
	},
	types.MoodConfused: {
		{ID: "cf1", Text: "How often do you feel unclear about what direction to take in life?", Category: types.CategoryCognitive},
		{ID: "cf2", Text: "How frequently do you postpone decisions because you're unsure?", Category: types.CategoryBehavior},
		{ID: "cf3", Text: "How much does not knowing your next step create stress?", Category: types.CategoryStress},
		{ID: "cf4", Text: "How often do you question whether your choices are right for you?", Category: types.CategoryCognitive},
		{ID: "cf5", Text: "How frequently do you ask others for advice but still feel lost?", Category: types.CategoryBehavior},
		{ID: "cf6", Text: "How much do mixed messages from others add to your confusion?", Category: types.CategoryStress},
		{ID: "cf7", Text: "How often do you feel like you don't know yourself well enough?", Category: types.CategoryCognitive},
		{ID: "cf8", Text: "How frequently do you start things without finishing them?", Category: types.CategoryBehavior},
		{ID: "cf9", Text: "How often do you feel paralyzed by having too many options?", Category: types.CategoryCognitive},
		{ID: "cf10", Text: "How much does uncertainty about your path create anxiety?", Category: types.CategoryStress},
		{ID: "cf11", Text: "How frequently do you avoid committing to a direction?", Category: types.CategoryBehavior},
		{ID: "cf12", Text: "How often do you change your mind about what you want?", Category: types.CategoryCognitive},
		{ID: "cf13", Text: "How much do you feel pulled in different directions?", Category: types.CategoryStress},
		{ID: "cf14", Text: "How frequently do you research options endlessly without deciding?", Category: types.CategoryBehavior},
		{ID: "cf15", Text: "How often do you feel lost about your identity or values?", Category: types.CategoryCognitive},
		{ID: "cf16", Text: "How much does lack of clarity drain your energy?", Category: types.CategoryStress},
	},
	types.MoodHopeful: {
		{ID: "hp1", Text: "How often do you see challenges as opportunities for growth?", Category: types.CategoryCognitive},
		{ID: "hp2", Text: "How frequently do you take active steps toward positive change?", Category: types.CategoryBehavior},
		{ID: "hp3", Text: "How much do you feel energized by the possibility of improvement?", Category: types.CategoryStress},
		{ID: "hp4", Text: "How often do you visualize positive outcomes for your future?", Category: types.CategoryCognitive},
		{ID: "hp5", Text: "How frequently do you share your optimism with others?", Category: types.CategoryBehavior},
		{ID: "hp6", Text: "How much do setbacks feel temporary rather than permanent to you?", Category: types.CategoryStress},
		{ID: "hp7", Text: "How often do you look for lessons in difficult experiences?", Category: types.CategoryCognitive},
		{ID: "hp8", Text: "How frequently do you encourage others who are struggling?", Category: types.CategoryBehavior},
		{ID: "hp9", Text: "How often do you feel excited about new beginnings?", Category: types.CategoryCognitive},
		{ID: "hp10", Text: "How much do you feel motivated by your goals?", Category: types.CategoryStress},
		{ID: "hp11", Text: "How frequently do you celebrate progress no matter how small?", Category: types.CategoryBehavior},
		{ID: "hp12", Text: "How often do you trust that things will work out?", Category: types.CategoryCognitive},
		{ID: "hp13", Text: "How much do you feel hopeful even during challenges?", Category: types.CategoryStress},
		{ID: "hp14", Text: "How frequently do you seek out inspirational content?", Category: types.CategoryBehavior},
		{ID: "hp15", Text: "How often do you believe in your ability to create change?", Category: types.CategoryCognitive},
		{ID: "hp16", Text: "How much do you feel energized by new possibilities?", Category: types.CategoryStress},
	},
	types.MoodExhausted: {
		{ID: "ex1", Text: "How often do you feel tired even after getting enough sleep?", Category: types.CategoryStress},
		{ID: "ex2", Text: "How frequently do you push through fatigue instead of resting?", Category: types.CategoryBehavior},
		{ID: "ex3", Text: "How much do you feel like your energy tank is always empty?", Category: types.CategoryCognitive},
		{ID: "ex4", Text: "How often does mental fatigue affect your physical energy?", Category: types.CategoryStress},
		{ID: "ex5", Text: "How frequently do you feel guilty for needing more rest than others?", Category: types.CategoryCognitive},
		{ID: "ex6", Text: "How much do you rely on caffeine or stimulants to function?", Category: types.CategoryBehavior},
		{ID: "ex7", Text: "How often do you feel too tired to enjoy things you used to love?", Category: types.CategoryCognitive},
		{ID: "ex8", Text: "How frequently do you say yes to things when you should rest?", Category: types.CategoryBehavior},
		{ID: "ex9", Text: "How often do you feel like you're moving through fog?", Category: types.CategoryCognitive},
		{ID: "ex10", Text: "How much does exhaustion affect your immune system?", Category: types.CategoryStress},
		{ID: "ex11", Text: "How frequently do you skip meals because you're too tired?", Category: types.CategoryBehavior},
		{ID: "ex12", Text: "How often do you struggle to concentrate due to fatigue?", Category: types.CategoryCognitive},
		{ID: "ex13", Text: "How much do you feel physically heavy or weighed down?", Category: types.CategoryStress},
		{ID: "ex14", Text: "How frequently do you nap during the day out of necessity?", Category: types.CategoryBehavior},
		{ID: "ex15", Text: "How often do you feel like you can't recharge no matter what?", Category: types.CategoryCognitive},
		{ID: "ex16", Text: "How much does exhaustion impact your mood and emotions?", Category: types.CategoryStress},
	},
	types.MoodFrustrated: {
		{ID: "fr1", Text: "How often do you feel like your efforts aren't paying off?", Category: types.CategoryCognitive},
		{ID: "fr2", Text: "How frequently do you get irritated with people or situations?", Category: types.CategoryBehavior},
		{ID: "fr3", Text: "How much does feeling stuck create tension in your body?", Category: types.CategoryStress},
		{ID: "fr4", Text: "How often do you think 'this shouldn't be this hard'?", Category: types.CategoryCognitive},
		{ID: "fr5", Text: "How frequently do you snap at people when you're stressed?", Category: types.CategoryBehavior},
		{ID: "fr6", Text: "How much do unmet expectations weigh on your mind?", Category: types.CategoryStress},
		{ID: "fr7", Text: "How often do you feel like you're fighting an uphill battle?", Category: types.CategoryCognitive},
		{ID: "fr8", Text: "How frequently do you vent your frustrations instead of addressing root causes?", Category: types.CategoryBehavior},
		{ID: "fr9", Text: "How often do you feel like you're hitting a wall repeatedly?", Category: types.CategoryCognitive},
		{ID: "fr10", Text: "How much does frustration build up in your chest or jaw?", Category: types.CategoryStress},
		{ID: "fr11", Text: "How frequently do you throw your hands up and give up?", Category: types.CategoryBehavior},
		{ID: "fr12", Text: "How often do you think about how unfair things are?", Category: types.CategoryCognitive},
		{ID: "fr13", Text: "How much does frustration make you feel physically hot or tense?", Category: types.CategoryStress},
		{ID: "fr14", Text: "How frequently do you lash out when something goes wrong?", Category: types.CategoryBehavior},
		{ID: "fr15", Text: "How often do you replay frustrating moments in your head?", Category: types.CategoryCognitive},
		{ID: "fr16", Text: "How much does frustration prevent you from seeing solutions?", Category: types.CategoryStress},
	},
	types.MoodPeaceful: {
		{ID: "pc1", Text: "How often do you feel centered and grounded in your daily life?", Category: types.CategoryCognitive},
		{ID: "pc2", Text: "How frequently do you practice activities that bring you calm?", Category: types.CategoryBehavior},
		{ID: "pc3", Text: "How much do you feel at ease with uncertainty and change?", Category: types.CategoryStress},
		{ID: "pc4", Text: "How often do you approach problems with a clear, calm mind?", Category: types.CategoryCognitive},
		{ID: "pc5", Text: "How frequently do you make time for activities you truly enjoy?", Category: types.CategoryBehavior},
		{ID: "pc6", Text: "How much do you feel balanced between effort and rest?", Category: types.CategoryStress},
		{ID: "pc7", Text: "How often do you feel grateful for what you have right now?", Category: types.CategoryCognitive},
		{ID: "pc8", Text: "How frequently do you help others feel more at ease?", Category: types.CategoryBehavior},
		{ID: "pc9", Text: "How often do you feel content with where you are right now?", Category: types.CategoryCognitive},
		{ID: "pc10", Text: "How much do you feel your nervous system is at rest?", Category: types.CategoryStress},
		{ID: "pc11", Text: "How frequently do you engage in activities that bring you joy?", Category: types.CategoryBehavior},
		{ID: "pc12", Text: "How often do you feel acceptance toward yourself and others?", Category: types.CategoryCognitive},
		{ID: "pc13", Text: "How much do you feel relaxed in your body throughout the day?", Category: types.CategoryStress},
		{ID: "pc14", Text: "How frequently do you spend time in nature or calming spaces?", Category: types.CategoryBehavior},
		{ID: "pc15", Text: "How often do you feel present in the current moment?", Category: types.CategoryCognitive},
		{ID: "pc16", Text: "How much do you feel harmony between your mind and body?", Category: types.CategoryStress},
	},
}
