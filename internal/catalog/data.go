package catalog

// Offerings is the static daymaker2day menu: 30 full classes (55 min) and
// 20 half classes (25 min) across five categories. Declaration order is the
// display order and must be preserved by filtering.
var Offerings = []Offering{
	// Full class (55 min)
	{ID: "fc8", Category: "Tech", Title: "Daymaker Password Vault", Description: "Organize your passwords safely with step-by-step guidance.", Icon: "Shield", ClassType: ClassFull},
	{ID: "fc21", Category: "Fun", Title: "Daymaker Playlist Party", Description: "Build a playlist based on your vibe with music suggestions.", Icon: "Headphones", ClassType: ClassFull},
	{ID: "fc10", Category: "Tech", Title: "Daymaker Drive Detox", Description: "Sort files, create folders, and set up a system that works.", Icon: "FolderOpen", ClassType: ClassFull},
	{ID: "fc7", Category: "Tech", Title: "Daymaker Speed Boost", Description: "Clean files, close apps, and optimize your computer for better performance.", Icon: "Monitor", ClassType: ClassFull},
	{ID: "fc23", Category: "Fun", Title: "Daymaker Trivia Showdown", Description: "Fun trivia across topics — test your knowledge!", Icon: "HelpCircle", ClassType: ClassFull},
	{ID: "fc6", Category: "Tech", Title: "Daymaker Phone Refresh", Description: "Organize apps, delete junk, and set up folders with helpful tips.", Icon: "Smartphone", ClassType: ClassFull},
	{ID: "fc14", Category: "Career", Title: "Daymaker Pitch Perfect", Description: "Rehearse a pitch or presentation with helpful prompts.", Icon: "Presentation", ClassType: ClassFull},
	{ID: "fc24", Category: "Fun", Title: "Daymaker Watch List", Description: "Get a personalized movie/show watchlist just for you.", Icon: "Film", ClassType: ClassFull},
	{ID: "fc15", Category: "Career", Title: "Daymaker Interview Prep", Description: "Run through common interview questions with confidence tips.", Icon: "UserCheck", ClassType: ClassFull},
	{ID: "fc13", Category: "Career", Title: "Daymaker LinkedIn Glow-Up", Description: "Rewrite your headline and about section with smart suggestions.", Icon: "Linkedin", ClassType: ClassFull},
	{ID: "fc25", Category: "Fun", Title: "Daymaker Pet Party", Description: "Introduce your pets and share fun stories together.", Icon: "Dog", ClassType: ClassFull},
	{ID: "fc12", Category: "Career", Title: "Daymaker Resume Refresh", Description: "Improve wording and format with tools to refine your text.", Icon: "FileText", ClassType: ClassFull},
	{ID: "fc5", Category: "Creative", Title: "Daymaker Voice Studio", Description: "Practice and record a short voiceover or podcast intro with guided prompts.", Icon: "Mic", ClassType: ClassFull},
	{ID: "fc20", Category: "Life", Title: "Daymaker Wardrobe Edit", Description: "Go through your closet and style outfits with fresh suggestions.", Icon: "Shirt", ClassType: ClassFull},
	{ID: "fc4", Category: "Creative", Title: "Daymaker Content Planner", Description: "Map 2 weeks of social posts with brainstorming and scheduling help.", Icon: "Calendar", ClassType: ClassFull},
	{ID: "fc1", Category: "Creative", Title: "Daymaker Beat Jam", Description: "Create a simple beat or melody with free tools. Tips included to enhance your music.", Icon: "Music", ClassType: ClassFull},
	{ID: "fc18", Category: "Life", Title: "Daymaker Meal Prep", Description: "Plan 5–7 meals and a shopping list with helpful suggestions.", Icon: "ChefHat", ClassType: ClassFull},
	{ID: "fc28", Category: "Creative", Title: "Daymaker Mini Music Jam", Description: "Make a mini tune together with creative guidance.", Icon: "Music2", ClassType: ClassFull},
	{ID: "fc27", Category: "Creative", Title: "Daymaker Story Studio", Description: "Create short stories or mini-scripts with guided prompts.", Icon: "BookOpen", ClassType: ClassFull},
	{ID: "fc17", Category: "Life", Title: "Daymaker Declutter Hour", Description: "Pick a drawer, closet, or desk and organize with fresh ideas.", Icon: "Home", ClassType: ClassFull},
	{ID: "fc29", Category: "Creative", Title: "Daymaker DIY Lab", Description: "Try a fun craft or small project with fresh inspiration.", Icon: "Scissors", ClassType: ClassFull},
	{ID: "fc30", Category: "Creative", Title: "Daymaker Idea Generator", Description: "Generate ideas for projects, content, or hobbies with guidance.", Icon: "Zap", ClassType: ClassFull},
	{ID: "fc16", Category: "Life", Title: "Daymaker Week Planner", Description: "Organize tasks and goals with smart planning tips.", Icon: "Calendar", ClassType: ClassFull},
	{ID: "fc26", Category: "Creative", Title: "Daymaker Creative Chat", Description: "Talk ideas for hobbies, crafts, or fun projects with inspiration.", Icon: "MessageCircle", ClassType: ClassFull},
	{ID: "fc2", Category: "Creative", Title: "Daymaker Logo Lab", Description: "Brainstorm 3–5 logo concepts for your project. Get help refining your designs.", Icon: "Palette", ClassType: ClassFull},
	{ID: "fc22", Category: "Fun", Title: "Daymaker Card Trick Class", Description: "Step-by-step guidance on an impressive card trick.", Icon: "Spade", ClassType: ClassFull},
	{ID: "fc9", Category: "Tech", Title: "Daymaker Canva Class", Description: "Make a flyer or social graphic step-by-step with design suggestions.", Icon: "Layout", ClassType: ClassFull},
	{ID: "fc11", Category: "Career", Title: "Daymaker Side Hustle Lab", Description: "Explore your idea and plan next steps with brainstorming tips.", Icon: "Lightbulb", ClassType: ClassFull},
	{ID: "fc3", Category: "Creative", Title: "Daymaker Photo Glow-Up", Description: "Pick 5–8 photos and enhance them together with easy editing tips.", Icon: "Image", ClassType: ClassFull},
	{ID: "fc19", Category: "Life", Title: "Daymaker Budget Boost", Description: "Track spending and plan simple savings with smart tips.", Icon: "PiggyBank", ClassType: ClassFull},

	// Half class (25 min)
	{ID: "hc2", Category: "Tech", Title: "Daymaker Inbox Tidy", Description: "Organize emails and files with quick shortcuts.", Icon: "Mail", ClassType: ClassHalf},
	{ID: "hc4", Category: "Creative", Title: "Daymaker Creative Spark", Description: "Paper airplane, doodle, or short song with inspiration.", Icon: "Sparkles", ClassType: ClassHalf},
	{ID: "hc8", Category: "Tech", Title: "Daymaker Email Organizer", Description: "Set up folders and priorities with guidance.", Icon: "Inbox", ClassType: ClassHalf},
	{ID: "hc7", Category: "Tech", Title: "Daymaker Device Tips", Description: "Learn phone or tablet tricks with quick tips.", Icon: "Smartphone", ClassType: ClassHalf},
	{ID: "hc20", Category: "Fun", Title: "Daymaker Celebration Planner", Description: "Plan a small fun celebration with tips.", Icon: "PartyPopper", ClassType: ClassHalf},
	{ID: "hc5", Category: "Life", Title: "Daymaker Life Hack Fix", Description: "Solve a small task or project with quick guidance.", Icon: "Wrench", ClassType: ClassHalf},
	{ID: "hc12", Category: "Life", Title: "Daymaker Decision Helper", Description: "Solve small decisions with guided prompts.", Icon: "GitBranch", ClassType: ClassHalf},
	{ID: "hc1", Category: "Life", Title: "Daymaker Style Check", Description: "Quick outfit feedback with color combo tips.", Icon: "Shirt", ClassType: ClassHalf},
	{ID: "hc3", Category: "Life", Title: "Daymaker Message Helper", Description: "Improve texts or emails with smart prompts.", Icon: "MessageSquare", ClassType: ClassHalf},
	{ID: "hc13", Category: "Creative", Title: "Daymaker Song Spark", Description: "Create a 1-minute song with creative guidance.", Icon: "Music", ClassType: ClassHalf},
	{ID: "hc6", Category: "Life", Title: "Daymaker Accessory Add-On", Description: "Jewelry or outfit tweaks with style suggestions.", Icon: "Gem", ClassType: ClassHalf},
	{ID: "hc16", Category: "Creative", Title: "Daymaker Quick Design", Description: "Make a quick Canva graphic with tips.", Icon: "Layout", ClassType: ClassHalf},
	{ID: "hc17", Category: "Creative", Title: "Daymaker Story Prompt", Description: "Create a short story with guided prompts.", Icon: "BookOpen", ClassType: ClassHalf},
	{ID: "hc19", Category: "Life", Title: "Daymaker Gift Finder", Description: "Brainstorm gifts for friends/family with suggestions.", Icon: "Gift", ClassType: ClassHalf},
	{ID: "hc14", Category: "Creative", Title: "Daymaker Idea Boost", Description: "Brainstorm hobby or project ideas with suggestions.", Icon: "Lightbulb", ClassType: ClassHalf},
	{ID: "hc9", Category: "Career", Title: "Daymaker Social Boost", Description: "Practice conversation starters with prompts.", Icon: "Users", ClassType: ClassHalf},
	{ID: "hc10", Category: "Creative", Title: "Daymaker Mood Boost", Description: "Tiny craft or creative project with suggestions.", Icon: "Heart", ClassType: ClassHalf},
	{ID: "hc15", Category: "Career", Title: "Daymaker Confidence Boost", Description: "Build confidence in a light, fun way with prompts.", Icon: "Star", ClassType: ClassHalf},
	{ID: "hc11", Category: "Life", Title: "Daymaker Desk Detox", Description: "Organize your workspace with quick tips.", Icon: "Monitor", ClassType: ClassHalf},
	{ID: "hc18", Category: "Life", Title: "Daymaker Daily Hack", Description: "Organize routines or small projects with tips.", Icon: "CheckSquare", ClassType: ClassHalf},
}

// TimeSlots are the bookable start times, rendered the way the booking
// calendar and the activity-window evaluator expect them ("H:MM AM/PM").
var TimeSlots = []string{
	"09:00 AM", "09:30 AM", "10:00 AM", "10:30 AM", "11:00 AM", "11:30 AM",
	"01:00 PM", "01:30 PM", "02:00 PM", "02:30 PM", "03:00 PM", "03:30 PM",
	"04:00 PM", "04:30 PM", "05:00 PM", "05:30 PM",
}
