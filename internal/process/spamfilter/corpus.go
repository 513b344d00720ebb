package spamfilter

// Spam keywords and phrases checked by the lexical filter. English marketing
// phrases plus Bengali vulgar/offensive terms; matching is case-insensitive
// substring containment.
var spamKeywords = []string{
	"buy now", "click here", "limited time offer", "get rich quick",
	"earn money fast", "free gift", "you've won", "congratulations you won",
	"অশ্লীল", "অপমানজনক", "অসভ্য",
}

// Labeled training corpus for the naive Bayes classifier. Built once at
// startup; never mutated. English and Bengali examples for both classes so
// that untranslated comments in either language carry evidence.
var (
	spamTexts = []string{
		"buy now limited time offer", "click here to claim your prize",
		"get rich quick scheme", "you've won an iPhone", "congratulations you won",
		"free gift card offer", "earn $1000 daily", "work from home earn money",
		"অশ্লীল ভিডিও", "টাকা পাঠাও", "ফ্রি মোবাইল রিচার্জ",
	}

	hamTexts = []string{
		"hello", "hi there", "how are you?", "what's the price?",
		"price koto?", "how much does this cost?", "thanks for the help",
		"can you assist me?", "nice product", "good service",
		"আপনার পণ্যটি ভালো", "দাম কত?", "সাহায্য করুন",
	}
)
