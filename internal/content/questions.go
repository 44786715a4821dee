package content

import "wellness-quiz-service/internal/domain"

// Questions is the built-in question bank. Postgres-backed deployments seed it with `seed`.
var Questions = []domain.Question{
	{
		ID:   "inet-001",
		Text: "What technique helps you verify if an online profile is genuine?",
		Options: []string{
			"Check for profile consistency across platforms",
			"Look only at their follower count",
			"Assume all profiles with photos are real",
			"Trust profiles that message you first",
		},
		CorrectOptionIndex: 0,
		Explanation:        "Genuine profiles typically have consistent information, posting history, and connections across platforms. Look for details like when the account was created, the types of posts shared, and if the profile seems naturally developed over time.",
		SecurityTip:        "Before connecting with someone online, do a quick cross-platform search of their name and check if their profile details, photos, and posting style appear consistent. Be especially cautious of recently created accounts with limited history.",
		Difficulty:         domain.Beginner,
		Topic:              "Internet Safety",
		Points:             100,
	},
	{
		ID:   "inet-002",
		Text: "Which of the following is a sign of a potentially harmful website?",
		Options: []string{
			"The website has a modern design",
			"The URL begins with 'https://'",
			"There are many misspellings and grammar errors",
			"The website has a privacy policy",
		},
		CorrectOptionIndex: 2,
		Explanation:        "Legitimate websites typically maintain professional standards including proper spelling and grammar. Frequent errors often indicate lack of professionalism or potentially malicious intent, as scam websites tend to have less editorial oversight.",
		SecurityTip:        "Trust your instincts - if a website feels unprofessional due to language errors, poor design, or unusual requests, it's better to leave and find information from more established sources.",
		Difficulty:         domain.Beginner,
		Topic:              "Internet Safety",
		Points:             100,
	},
	{
		ID:   "inet-003",
		Text: "What is 'oversharing' in the context of social media?",
		Options: []string{
			"Posting too many times in one day",
			"Sharing content from too many different topics",
			"Revealing excessive personal information that could put you at risk",
			"Having too many followers see your content",
		},
		CorrectOptionIndex: 2,
		Explanation:        "Oversharing on social media means revealing too much personal information that could compromise your privacy, safety, or future opportunities. This includes home addresses, vacation plans, financial details, or personal struggles that might be used against you.",
		SecurityTip:        "Before posting, ask yourself if the information could be used to identify your location, access your accounts, or harm your reputation. Consider creating content guidelines for yourself about what you will and won't share online.",
		Difficulty:         domain.Beginner,
		Topic:              "Internet Safety",
		Points:             100,
	},
	{
		ID:   "foot-001",
		Text: "Which of the following BEST describes your 'digital footprint'?",
		Options: []string{
			"The amount of time you spend online each day",
			"The trace of data you leave behind when using the internet",
			"Your typing pattern and speed on digital devices",
			"The number of accounts you have on social media",
		},
		CorrectOptionIndex: 1,
		Explanation:        "Your digital footprint is the trail of data you create while using the internet, including websites visited, posts made, photos uploaded, messages sent, and information shared. This includes both active contributions (deliberate posts) and passive data collection (browsing history, cookies).",
		SecurityTip:        "Regularly review your digital footprint by searching your name online, checking privacy settings on all accounts, and using tools that show which apps and websites have your data. What you share today might have consequences years later.",
		Difficulty:         domain.Beginner,
		Topic:              "Digital Footprint",
		Points:             100,
	},
	{
		ID:   "foot-002",
		Text: "Why is it important to manage your digital footprint?",
		Options: []string{
			"It affects how much internet bandwidth you use",
			"It can influence future job opportunities and relationships",
			"It determines your computer's processing speed",
			"It's only important for celebrities and public figures",
		},
		CorrectOptionIndex: 1,
		Explanation:        "Your digital footprint can significantly impact your future opportunities. Employers, schools, landlords, and even potential partners often search for information about you online. Negative content can limit opportunities, while a positive digital presence can be beneficial.",
		SecurityTip:        "Build a positive digital footprint by sharing thoughtful content related to your interests and achievements. Regularly review privacy settings, delete unnecessary accounts, and set up Google Alerts for your name to monitor new content.",
		Difficulty:         domain.Beginner,
		Topic:              "Digital Footprint",
		Points:             100,
	},
	{
		ID:   "foot-003",
		Text: "What is 'digital permanence'?",
		Options: []string{
			"The ability to access your digital accounts forever",
			"The guaranteed storage of your files in the cloud",
			"The idea that online content can exist indefinitely, even after deletion",
			"A paid service that preserves your digital content",
		},
		CorrectOptionIndex: 2,
		Explanation:        "Digital permanence refers to the persistent nature of online content. Even after 'deleting' something, copies may exist in backups, archives, screenshots, or have been shared by others, making truly complete deletion nearly impossible.",
		SecurityTip:        "Think before posting as if everything is permanent. Use the 'front page test': Would you be comfortable if your post appeared on the front page of a newspaper? If not, reconsider sharing it online.",
		Difficulty:         domain.Beginner,
		Topic:              "Digital Footprint",
		Points:             100,
	},
	{
		ID:   "scrn-001",
		Text: "Which of these is a healthy approach to managing screen time?",
		Options: []string{
			"Using devices continuously until all tasks are complete",
			"Taking regular breaks and setting time limits for different activities",
			"Completely avoiding all screens as much as possible",
			"Only using screens after midnight when you're less likely to be interrupted",
		},
		CorrectOptionIndex: 1,
		Explanation:        "Healthy screen time management involves balance rather than elimination. Taking regular breaks (like the 20-20-20 rule: every 20 minutes, look at something 20 feet away for 20 seconds), setting purpose-based time limits, and creating screen-free times and zones help maintain digital wellness.",
		SecurityTip:        "Use screen time management tools built into your devices or third-party apps to track usage patterns and set limits. Creating a 'tech schedule' with designated times for different activities can help maintain balance.",
		Difficulty:         domain.Beginner,
		Topic:              "Screen Time Management",
		Points:             100,
	},
	{
		ID:   "scrn-002",
		Text: "How does excessive screen time before bed affect sleep quality?",
		Options: []string{
			"It has no significant effect on sleep",
			"It only affects sleep if you're watching action movies",
			"It can disrupt melatonin production and make falling asleep more difficult",
			"It always improves sleep by making you more tired",
		},
		CorrectOptionIndex: 2,
		Explanation:        "The blue light emitted by screens can suppress melatonin production, a hormone that regulates sleep. Additionally, engaging with stimulating content can activate your brain rather than allowing it to wind down, making it harder to fall asleep and reducing overall sleep quality.",
		SecurityTip:        "Implement a 'digital sunset' by turning off screens 1-2 hours before bedtime. If you must use devices, enable night mode or blue light filters, and choose relaxing rather than stimulating content.",
		Difficulty:         domain.Beginner,
		Topic:              "Screen Time Management",
		Points:             100,
	},
	{
		ID:   "bully-001",
		Text: "What should you do if you witness cyberbullying?",
		Options: []string{
			"Ignore it completely - it's not your problem",
			"Join in to avoid becoming a target yourself",
			"Support the target privately and report the behavior",
			"Publicly argue with the bully to defend the target",
		},
		CorrectOptionIndex: 2,
		Explanation:        "Supporting the target privately shows them they're not alone while avoiding public confrontation that might escalate the situation. Reporting the behavior to the platform helps enforce community standards. Document evidence if the bullying is severe or persistent.",
		SecurityTip:        "Most social platforms have clear reporting mechanisms for harassment. Learn how to take screenshots and save evidence of bullying. Remember that bystander support can significantly reduce the harmful effects of cyberbullying on targets.",
		Difficulty:         domain.Beginner,
		Topic:              "Cyberbullying",
		Points:             100,
	},
	{
		ID:   "bully-002",
		Text: "What is 'exclusion' as a form of cyberbullying?",
		Options: []string{
			"Blocking someone who is harassing you",
			"Deliberately leaving someone out of online groups or activities",
			"Setting your social media accounts to private",
			"Taking a break from social media platforms",
		},
		CorrectOptionIndex: 1,
		Explanation:        "Exclusion is a form of cyberbullying where someone is deliberately left out of online groups, conversations, or activities as a way to hurt them socially. This can include creating group chats specifically to exclude certain people or organizing events while visibly leaving someone out.",
		SecurityTip:        "Be mindful of how exclusionary behavior can affect others. If you notice someone being systematically excluded, consider reaching out to them privately and including them when appropriate. Recognize the difference between setting healthy boundaries and deliberately excluding to cause harm.",
		Difficulty:         domain.Beginner,
		Topic:              "Cyberbullying",
		Points:             100,
	},
	{
		ID:   "well-001",
		Text: "Which practice best supports digital wellness?",
		Options: []string{
			"Checking notifications immediately whenever they appear",
			"Setting boundaries between online and offline life",
			"Maintaining as many social media accounts as possible",
			"Comparing your achievements to others online",
		},
		CorrectOptionIndex: 1,
		Explanation:        "Setting clear boundaries between online and offline life is essential for digital wellness. This includes designated tech-free times and spaces, taking regular digital detoxes, and being mindful of how digital interactions affect your mental state.",
		SecurityTip:        "Create physical 'no-tech zones' in your home (like bedrooms or dining areas) and schedule regular tech-free activities. Use 'Do Not Disturb' modes during focused work, family time, or before bed to reduce the urge to constantly check devices.",
		Difficulty:         domain.Beginner,
		Topic:              "Digital Wellness",
		Points:             100,
	},
	{
		ID:   "well-002",
		Text: "How can you reduce digital eye strain?",
		Options: []string{
			"Use screens only in complete darkness",
			"Hold your device closer to your eyes",
			"Follow the 20-20-20 rule (every 20 minutes, look 20 feet away for 20 seconds)",
			"Increase screen brightness to maximum",
		},
		CorrectOptionIndex: 2,
		Explanation:        "The 20-20-20 rule helps reduce eye strain by giving your eye muscles a break from focusing at the same distance. Looking at something 20 feet away for 20 seconds every 20 minutes allows your eyes to relax and reduces fatigue.",
		SecurityTip:        "Adjust your screen position so it's slightly below eye level and about arm's length away. Use proper lighting to reduce glare, adjust your screen brightness to match your surroundings, and consider using blue light filtering glasses if you spend long hours on screens.",
		Difficulty:         domain.Beginner,
		Topic:              "Digital Wellness",
		Points:             100,
	},
	{
		ID:   "ident-001",
		Text: "What is 'digital citizenship'?",
		Options: []string{
			"Having accounts on all major social platforms",
			"Using technology in responsible and ethical ways",
			"Citizenship obtained through online applications",
			"Participating in online voting systems",
		},
		CorrectOptionIndex: 1,
		Explanation:        "Digital citizenship refers to the responsible and ethical use of technology, including appropriate online behavior, understanding digital rights and responsibilities, critical thinking about online content, and participating positively in online communities.",
		SecurityTip:        "Practice good digital citizenship by respecting others online, fact-checking before sharing content, protecting your own and others' privacy, and standing up against harmful online behavior in constructive ways.",
		Difficulty:         domain.Beginner,
		Topic:              "Online Identity",
		Points:             100,
	},
	{
		ID:   "ident-002",
		Text: "What does 'think before you post' mean regarding online communication?",
		Options: []string{
			"Planning elaborate social media campaigns",
			"Considering the potential long-term consequences of your online actions",
			"Writing down posts before typing them online",
			"Only posting content during business hours",
		},
		CorrectOptionIndex: 1,
		Explanation:        "'Think before you post' reminds us to consider the potential consequences of our online content before sharing it. This includes how it might affect our reputation, relationships, future opportunities, and the well-being of others, both immediately and years later.",
		SecurityTip:        "Before posting, pause and ask: Is this true? Is it helpful? Is it inspiring? Is it necessary? Is it kind? Would I be comfortable with this content being seen by family, employers, or appearing in news media? This mindful approach leads to more intentional online presence.",
		Difficulty:         domain.Beginner,
		Topic:              "Online Identity",
		Points:             100,
	},
	{
		ID:   "foot-004",
		Text: "What is a 'shadow profile' in the context of digital privacy?",
		Options: []string{
			"A backup of your social media profile",
			"A secondary account you create with a pseudonym",
			"Data collected about you by companies even if you don't use their services",
			"A deleted profile that still appears in search results",
		},
		CorrectOptionIndex: 2,
		Explanation:        "A shadow profile is information collected about you by companies even if you don't have an account with them. This happens through tracking technologies, data sharing between companies, and information provided by people who do use their services (like when a friend uploads their contact list containing your information).",
		SecurityTip:        "Reduce shadow profiling by asking friends not to tag you or upload your contact information, using privacy-focused browsers and search engines, and regularly checking data broker sites to opt out of data collection where possible.",
		Difficulty:         domain.Intermediate,
		Topic:              "Digital Footprint",
		Points:             200,
	},
	{
		ID:   "bully-003",
		Text: "What is 'doxing' and why is it harmful?",
		Options: []string{
			"Sharing educational documents online",
			"Taking excessive documentation of events",
			"Publishing someone's private information without permission",
			"Downloading someone's public social media photos",
		},
		CorrectOptionIndex: 2,
		Explanation:        "Doxing involves researching and publishing private information about someone without their consent, often with malicious intent. This can include home addresses, phone numbers, workplace details, or family information. It's harmful because it can lead to harassment, stalking, identity theft, or physical danger.",
		SecurityTip:        "Protect yourself from doxing by limiting personal information shared online, using different usernames across platforms, checking images for metadata before posting, and regularly searching for your own information to see what's publicly available.",
		Difficulty:         domain.Intermediate,
		Topic:              "Cyberbullying",
		Points:             200,
	},
	{
		ID:   "bal-001",
		Text: "What is 'phantom vibration syndrome'?",
		Options: []string{
			"A hardware defect causing phones to vibrate randomly",
			"The sensation of feeling your phone vibrate when it hasn't",
			"A ringtone that includes vibration patterns",
			"Software that creates custom vibration patterns",
		},
		CorrectOptionIndex: 1,
		Explanation:        "Phantom vibration syndrome is the perception that your mobile device is vibrating when it actually isn't. This phenomenon, experienced by many smartphone users, suggests how our brains have become hyperaware of our devices, anticipating notifications even when none occur.",
		SecurityTip:        "If you frequently experience phantom vibrations, consider it a sign to evaluate your relationship with technology. Try reducing notification frequency, setting specific check-in times rather than constant availability, or taking short digital detoxes to reset your attention patterns.",
		Difficulty:         domain.Intermediate,
		Topic:              "Digital Wellness",
		Points:             200,
	},
	{
		ID:   "soc-001",
		Text: "What is 'context collapse' in social media?",
		Options: []string{
			"When a website crashes due to too many users",
			"The flattening of multiple audiences into one",
			"When old posts resurface unexpectedly",
			"The shortening of attention spans online",
		},
		CorrectOptionIndex: 1,
		Explanation:        "Context collapse occurs when content intended for one audience is seen by multiple, diverse audiences who may interpret it differently. In real life, we adjust our communication based on who we're talking to, but on social media, posts can be seen by family, colleagues, friends, and strangers simultaneously.",
		SecurityTip:        "Manage context collapse by using platform features like close friends lists, audience selectors, or multiple accounts for different contexts. Consider how different audiences might interpret your content, and when in doubt, post with your widest possible audience in mind.",
		Difficulty:         domain.Intermediate,
		Topic:              "Digital Literacy",
		Points:             200,
	},
	{
		ID:   "priv-003",
		Text: "What are 'dark patterns' in digital design?",
		Options: []string{
			"Color schemes using dark mode",
			"Interface designs that aid visually impaired users",
			"Tricks in website and app design that manipulate users into certain actions",
			"Coding structures that use minimal processing power",
		},
		CorrectOptionIndex: 2,
		Explanation:        "Dark patterns are deceptive design techniques that trick users into doing things they didn't intend to do, like subscribing to services, sharing more data than intended, or making unwanted purchases. These include hidden costs, forced continuity, disguised ads, and confusing interfaces.",
		SecurityTip:        "Be vigilant when navigating websites and apps, especially during signup, checkout, or cancellation processes. Read carefully before clicking, look for pre-checked boxes, be wary of countdown timers creating false urgency, and don't hesitate to abandon a process that feels manipulative.",
		Difficulty:         domain.Intermediate,
		Topic:              "Privacy Settings",
		Points:             200,
	},
	{
		ID:   "well-003",
		Text: "What is 'technoference' and how does it impact relationships?",
		Options: []string{
			"Technical interference between different devices",
			"Using technology to enhance communication in relationships",
			"Disruptions in personal interactions caused by technology use",
			"Relationship problems caused by different tech preferences",
		},
		CorrectOptionIndex: 2,
		Explanation:        "Technoference refers to how technology interrupts and interferes with face-to-face interactions and relationships. Research shows these interruptions, even brief ones like checking notifications during conversations, can decrease relationship satisfaction, create feelings of rejection, and reduce the quality of interactions.",
		SecurityTip:        "Create tech-free zones or times for meaningful interactions. Practice 'phubbing prevention' by keeping devices out of sight during conversations, enabling Do Not Disturb mode during quality time, and discussing technology boundaries with important people in your life.",
		Difficulty:         domain.Advanced,
		Topic:              "Digital Wellness",
		Points:             300,
	},
	{
		ID:   "ident-003",
		Text: "What is 'context-appropriate sharing' in digital communication?",
		Options: []string{
			"Only posting content during business hours",
			"Tailoring your communication style and content to the specific platform and audience",
			"Sharing the same content across all your platforms simultaneously",
			"Posting only about contexts you're physically present in",
		},
		CorrectOptionIndex: 1,
		Explanation:        "Context-appropriate sharing recognizes that different digital platforms have different cultures, purposes, and audiences. What's appropriate for a close friends Instagram story might be inappropriate for LinkedIn. It involves adjusting content, tone, and level of formality based on the specific context and intended audience.",
		SecurityTip:        "Before posting, consider: Is this content suitable for this specific platform? Does it align with how others use this space? Would it make sense to my intended audience here? This mindful approach leads to more effective communication and reduces social media faux pas.",
		Difficulty:         domain.Advanced,
		Topic:              "Online Identity",
		Points:             300,
	},
	{
		ID:   "lit-001",
		Text: "What is 'deep fake' technology?",
		Options: []string{
			"Advanced encryption for secure communications",
			"AI-generated content that falsely depicts real people saying or doing things",
			"Software that detects fake news with high accuracy",
			"Very convincing phishing attempts",
		},
		CorrectOptionIndex: 1,
		Explanation:        "Deep fake technology uses artificial intelligence and machine learning to create hyper-realistic but fabricated videos, images, or audio where real people appear to say or do things they never did. This technology has rapidly advanced, making fake content increasingly difficult to distinguish from authentic media.",
		SecurityTip:        "Develop critical media literacy skills by questioning the source of surprising or inflammatory content, looking for verification from multiple reliable sources, checking for inconsistencies in lighting or audio, and using tools designed to detect deepfakes when in doubt about content authenticity.",
		Difficulty:         domain.Advanced,
		Topic:              "Digital Literacy",
		Points:             300,
	},
	{
		ID:   "algo-001",
		Text: "What is a 'filter bubble' in online media consumption?",
		Options: []string{
			"A feature that blocks inappropriate content",
			"A state of intellectual isolation resulting from personalized algorithms",
			"A tool that improves image quality on social media",
			"A temporary ban from posting on platforms",
		},
		CorrectOptionIndex: 1,
		Explanation:        "A filter bubble occurs when algorithms select content based on your past behavior, creating a personalized information ecosystem that reinforces existing beliefs and limits exposure to contrary perspectives. This can lead to polarization, misinformation vulnerability, and a skewed perception of consensus on issues.",
		SecurityTip:        "Intentionally diversify your information diet by following sources with different perspectives, regularly clearing search history and cookies, using private browsing for certain searches, and occasionally using different search engines or platforms that don't track your preferences.",
		Difficulty:         domain.Advanced,
		Topic:              "Digital Literacy",
		Points:             300,
	},
	{
		ID:   "info-001",
		Text: "What is 'lateral reading' in information verification?",
		Options: []string{
			"Reading articles from left to right",
			"Comparing multiple articles side by side",
			"Leaving a website to verify its claims on other sites",
			"Checking sources cited within an article",
		},
		CorrectOptionIndex: 2,
		Explanation:        "Lateral reading is a fact-checking strategy where, instead of staying on a website and evaluating it based on its own claims and appearance, you open new tabs to research the site itself, its authors, and verify claims by consulting other authoritative sources. This approach is more effective at identifying misinformation.",
		SecurityTip:        "When encountering new or questionable information, practice lateral reading by: 1) Opening new tabs to search about the source, 2) Looking for information about the author, 3) Checking if other reputable sources report the same information, and 4) Consulting fact-checking websites.",
		Difficulty:         domain.Advanced,
		Topic:              "Digital Literacy",
		Points:             300,
	},
}
