package config

// DefaultPrompts is the journaling prompt pool used when content.prompts is unset
var DefaultPrompts = []string{
	"What made you smile today thinking about your partner?",
	"Describe a small moment together that meant the world.",
	"What's something your partner does that you find adorable?",
	"Write about a dream you both share for the future.",
	"What song reminds you of your relationship right now?",
	"If you could relive one day together, which would it be?",
	"What's something new you learned about your partner recently?",
	"Describe how your partner makes ordinary moments special.",
	"What are you most grateful for in your relationship today?",
	"Write a message your future self would love to read.",
	"What's the bravest thing you've done together?",
	"Describe the feeling when you see your partner after time apart.",
	"What inside joke always makes you both laugh?",
	"What quality in your partner inspires you the most?",
	"If your love story was a movie, what would today's scene be?",
	"What's a tiny detail about your partner others might not notice?",
	"Describe the most peaceful moment you've shared recently.",
	"What adventure do you want to plan together next?",
	"Write about a challenge you overcame together.",
	"What would you whisper to your partner right now?",
	"What tradition would you love to start together?",
	"Describe the color of your love today.",
	"What's something your partner said that you'll never forget?",
	"If you could give your partner one superpower, what would it be?",
	"What three words describe your relationship this week?",
	"Write about a favorite meal you've shared together.",
	"What makes your partner your safe place?",
	"Describe a moment when your partner surprised you.",
	"What's on your couple bucket list that excites you most?",
	"If your partner could read your mind right now, what would they see?",
}

// DefaultQuestions is the question-of-the-day pool used when content.questions is unset
var DefaultQuestions = []string{
	"What's something I do that makes you feel truly loved?",
	"If you could relive one day together, which would you choose?",
	"What's a dream you haven't told me about yet?",
	"What moment made you realize you loved me?",
	"What's your favorite inside joke between us?",
	"If our love story was a movie, what genre would it be?",
	"What's one thing you want us to do before we're old?",
	"What's your favorite physical feature of mine?",
	"What song makes you think of us?",
	"What's something small I do that means the world to you?",
	"Where do you see us in 5 years?",
	"What's a challenge we overcame that made us stronger?",
	"What were you thinking on our first date?",
	"What's one thing you'd change about how we communicate?",
	"What's your favorite memory of us this year?",
	"If you could describe our love in 3 words, what would they be?",
	"What's the bravest thing we've done together?",
	"What do you admire most about me?",
	"What's a tradition you'd love to start together?",
	"What makes our relationship different from others?",
	"What's something you've learned about yourself through us?",
	"If we had one day with no responsibilities, what would we do?",
	"What's the kindest thing I've ever done for you?",
	"What's one thing you wish I knew about you?",
	"What does 'home' mean to you in our relationship?",
	"What's a fear you have about the future that I can help with?",
	"What moment with me made you laugh the hardest?",
	"What do you think is our greatest strength as a couple?",
	"What's something you're grateful for about us today?",
	"If you wrote me a letter from the future, what would it say?",
}
