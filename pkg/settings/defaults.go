package settings

import "github.com/creative-sdg/multitulza-sub000/domain/models"

// DefaultSettings - Business Settings สำหรับ Admin UI
// ค่า System/Infrastructure อยู่ใน .env หรือ config โดยตรง
var DefaultSettings = map[string]map[string]SettingDefinition{
	// ทั่วไป - Branding และ Limits
	"general": {
		"app_title":        {Value: "Character Studio", Type: models.SettingTypeString, Description: "ชื่อแอป"},
		"history_max_rows": {Value: "200", Type: models.SettingTypeNumber, Description: "จำนวน history สูงสุดต่อ user"},
	},
	// Prompt templates ต่อ generation mode
	// {{name}} {{personality}} {{backstory}} {{livingPlace}} {{style}} {{activity}} ถูกแทนค่าตอน generate
	"prompts": {
		"profile_instruction": {Value: "Invent a fictional character profile for the person in this photo. Describe their name, personality, backstory, living place and visual style. The character is entirely fictional and must not be identified as a real person.", Type: models.SettingTypeString, Description: "instruction สำหรับสร้าง character profile"},
		"template_normal":     {Value: "{{name}}, {{style}}, {{activity}} in {{livingPlace}}, photorealistic, natural lighting", Type: models.SettingTypeString, Description: "template โหมด normal"},
		"template_selfie":     {Value: "Phone selfie of {{name}}, {{style}}, {{activity}}, candid, slightly imperfect framing", Type: models.SettingTypeString, Description: "template โหมด selfie"},
		"template_romantic":   {Value: "{{name}}, {{style}}, {{activity}}, golden hour, soft romantic atmosphere", Type: models.SettingTypeString, Description: "template โหมด romantic"},
		"template_date":       {Value: "{{name}} on a date, {{style}}, {{activity}}, warm evening light, cinematic", Type: models.SettingTypeString, Description: "template โหมด date"},
		"template_couple":     {Value: "{{name}} together with their companion, {{style}}, {{activity}}, both faces visible, candid moment", Type: models.SettingTypeString, Description: "template โหมด couple"},
	},
	// Activity/archetype lists (คั่นด้วย |)
	"generation": {
		"activities_normal":   {Value: "walking through a market|reading at a cafe|cooking dinner|working at a desk|tending plants on a balcony", Type: models.SettingTypeString, Description: "activities โหมด normal"},
		"activities_selfie":   {Value: "mirror selfie at the gym|selfie with morning coffee|selfie on a rooftop at sunset|selfie in a car", Type: models.SettingTypeString, Description: "activities โหมด selfie"},
		"activities_romantic": {Value: "holding a bouquet of peonies|writing a letter by candlelight|dancing alone in the kitchen", Type: models.SettingTypeString, Description: "activities โหมด romantic"},
		"activities_date":     {Value: "sharing dessert at a bistro|walking along a river promenade|at a rooftop bar with city lights", Type: models.SettingTypeString, Description: "activities โหมด date"},
		"activities_couple":   {Value: "cooking together|laughing over a board game|walking a dog in a park|on a tandem bicycle", Type: models.SettingTypeString, Description: "activities โหมด couple"},
		"archetypes":          {Value: "adventurer|dreamer|professional|artist|athlete|homebody", Type: models.SettingTypeString, Description: "archetype list สำหรับ style hints"},
		"scene_count":         {Value: "6", Type: models.SettingTypeNumber, Description: "จำนวน scene prompts ต่อ character"},
		"default_image_model": {Value: "fal-ai/flux/dev", Type: models.SettingTypeString, Description: "image model เริ่มต้น"},
		"default_video_model": {Value: "fal-ai/kling-video/v1.6/standard/image-to-video", Type: models.SettingTypeString, Description: "video model เริ่มต้น"},
	},
	// Audio timeline
	"audio": {
		"min_effective_duration": {Value: "2", Type: models.SettingTypeNumber, Description: "floor ของ effective duration (วินาที)"},
		"max_chunks":             {Value: "10", Type: models.SettingTypeNumber, Description: "จำนวน chunks สูงสุดต่อ project"},
	},
	// Rebrand
	"brand": {
		"competitors":   {Value: "FitPro,GymShark,MyProtein,Optimum Nutrition,MuscleTech,BSN", Type: models.SettingTypeString, Description: "รายชื่อแบรนด์คู่แข่ง (คั่นด้วย ,)"},
		"default_brand": {Value: "", Type: models.SettingTypeString, Description: "แบรนด์ที่ใช้แทนเมื่อ request ไม่ระบุ"},
	},
	// Google Sheets text source
	"sheets": {
		"default_spreadsheet_id": {Value: "", Type: models.SettingTypeString, Description: "spreadsheet เริ่มต้นเมื่อ request ไม่ระบุ"},
		"default_sheet_name":     {Value: "Sheet1", Type: models.SettingTypeString, Description: "ชื่อ sheet เริ่มต้น"},
	},
	// Text-to-speech
	"speech": {
		"max_text_length": {Value: "5000", Type: models.SettingTypeNumber, Description: "ความยาว text สูงสุดต่อ request"},
		"allowed_voices":  {Value: "21m00Tcm4TlvDq8ikWAM,AZnzlk1XvdvUeBnXmlld,EXAVITQu4vr4xnSDxMaL,pNInz6obpgDQGcFmaJgB", Type: models.SettingTypeString, Description: "voice IDs ที่อนุญาต (คั่นด้วย ,)"},
		"default_voice":   {Value: "21m00Tcm4TlvDq8ikWAM", Type: models.SettingTypeString, Description: "voice เริ่มต้น"},
	},
}

// EnvMapping mapping จาก setting key ไปยัง ENV variable (Level 1 - Override สูงสุด)
var EnvMapping = map[string]string{
	"general.app_title":      "APP_NAME",
	"speech.default_voice":   "ELEVENLABS_VOICE_ID",
	"speech.max_text_length": "SPEECH_MAX_TEXT_LENGTH",
}

// SettingDefinition คำอธิบายของ setting
type SettingDefinition struct {
	Value       string
	Type        models.SettingValueType
	Description string
	IsSecret    bool
}

// GetDefaultModels แปลง DefaultSettings เป็น models สำหรับ insert
func GetDefaultModels() []*models.SystemSetting {
	var result []*models.SystemSetting

	for category, keys := range DefaultSettings {
		for key, def := range keys {
			result = append(result, &models.SystemSetting{
				Category:    category,
				Key:         key,
				Value:       def.Value,
				ValueType:   string(def.Type),
				Description: def.Description,
				IsSecret:    def.IsSecret,
			})
		}
	}

	return result
}
