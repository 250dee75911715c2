package registry

// Timezone is an IANA zone with its standard UTC offset in minutes.
type Timezone struct {
	Name          string
	OffsetMinutes int
}

// Languages are BCP 47 tags a browser may report.
var Languages = []string{
	"en-US", "en-GB", "en-AU", "en-CA",
	"fr-FR", "fr-CA", "de-DE", "es-ES",
	"it-IT", "pt-BR", "pt-PT", "nl-NL",
	"ru-RU", "ja-JP", "zh-CN", "zh-TW",
	"ko-KR", "ar-SA", "ar-TN", "tr-TR",
	"pl-PL", "sv-SE", "da-DK", "fi-FI",
}

var Timezones = []Timezone{
	{"America/New_York", -300},
	{"America/Los_Angeles", -480},
	{"America/Chicago", -360},
	{"America/Sao_Paulo", -180},
	{"Europe/London", 0},
	{"Europe/Paris", 60},
	{"Europe/Berlin", 60},
	{"Europe/Moscow", 180},
	{"Asia/Tokyo", 540},
	{"Asia/Shanghai", 480},
	{"Asia/Dubai", 240},
	{"Asia/Riyadh", 180},
	{"Australia/Sydney", 600},
	{"Africa/Tunis", 60},
	{"UTC", 0},
}

// EmailProviders are common webmail domains.
var EmailProviders = []string{
	"gmail.com", "yahoo.com", "outlook.com", "hotmail.com",
	"protonmail.com", "icloud.com", "mail.com", "aol.com",
}

var JobTitles = []string{
	"Software Engineer", "Data Analyst", "Product Manager", "Accountant",
	"Graphic Designer", "Marketing Specialist", "Sales Representative",
	"Project Coordinator", "Nurse", "Civil Engineer", "Teacher", "Architect",
	"Financial Advisor", "HR Manager", "Operations Manager", "Pharmacist",
	"Security Analyst", "Technical Writer", "Customer Success Manager", "Electrician",
}

// AvatarServices are URL templates with a {seed} slot.
var AvatarServices = []string{
	"https://api.multiavatar.com/{seed}.png",
	"https://api.dicebear.com/7.x/identicon/svg?seed={seed}",
	"https://robohash.org/{seed}?set=set4",
}

var ConnectionTypes = []string{"wifi", "ethernet", "4g", "5g"}

// DoNotTrack values; browsers without a preference report "unspecified".
var DoNotTrack = []string{"1", "0", "unspecified"}
