package usecase

// careerField is one entry of the weighted career taxonomy. Keywords are
// grouped by tier: job titles weigh 10, primary keywords 5, secondary 2.
// Slice order is the tie-break order for equal scores.
type careerField struct {
	name      string
	jobTitles []string
	primary   []string
	secondary []string
}

func (f careerField) allKeywords() []string {
	out := make([]string, 0, len(f.jobTitles)+len(f.primary)+len(f.secondary))
	out = append(out, f.jobTitles...)
	out = append(out, f.primary...)
	out = append(out, f.secondary...)
	return out
}

// dataScienceFields are the fields eligible for the data-science
// disambiguation override.
var dataScienceFields = map[string]bool{
	"Data Science":            true,
	"Machine Learning":        true,
	"Artificial Intelligence": true,
	"NLP Engineer":            true,
	"Computer Vision":         true,
	"Data Analytics":          true,
	"Data Engineering":        true,
}

var careerFields = []careerField{
	{
		name: "Data Science",
		jobTitles: []string{"data scientist", "data science", "senior data scientist", "lead data scientist",
			"data science manager", "principal data scientist", "staff data scientist"},
		primary: []string{"data science", "data scientist", "predictive modeling", "statistical modeling",
			"data mining", "feature engineering", "model deployment", "a/b testing",
			"experimental design", "hypothesis testing", "regression analysis", "classification"},
		secondary: []string{"statistics", "statistical analysis", "data visualization", "python", "r programming",
			"jupyter", "pandas", "numpy", "scikit-learn", "matplotlib", "seaborn", "plotly"},
	},
	{
		name: "Machine Learning",
		jobTitles: []string{"machine learning engineer", "ml engineer", "machine learning scientist",
			"applied scientist", "research scientist ml", "ml ops engineer"},
		primary: []string{"machine learning", "ml engineer", "deep learning", "neural network", "model training",
			"supervised learning", "unsupervised learning", "reinforcement learning", "mlops",
			"feature extraction", "model optimization", "hyperparameter tuning"},
		secondary: []string{"tensorflow", "pytorch", "keras", "scikit-learn", "xgboost", "lightgbm",
			"random forest", "gradient boosting", "svm", "clustering", "dimensionality reduction"},
	},
	{
		name: "Artificial Intelligence",
		jobTitles: []string{"ai engineer", "artificial intelligence engineer", "ai researcher", "ai scientist",
			"ai developer", "cognitive computing", "ai architect"},
		primary: []string{"artificial intelligence", "ai engineer", "cognitive computing", "expert systems",
			"knowledge representation", "reasoning systems", "ai research", "intelligent systems"},
		secondary: []string{"neural networks", "deep learning", "computer vision", "nlp", "robotics ai",
			"autonomous systems", "ai ethics", "explainable ai"},
	},
	{
		name: "NLP Engineer",
		jobTitles: []string{"nlp engineer", "natural language processing engineer", "nlp scientist",
			"computational linguist", "nlp researcher", "text analytics engineer"},
		primary: []string{"natural language processing", "nlp", "text mining", "sentiment analysis",
			"named entity recognition", "text classification", "language model", "chatbot",
			"conversational ai", "speech recognition", "text generation"},
		secondary: []string{"spacy", "nltk", "transformers", "bert", "gpt", "word embeddings", "word2vec",
			"tokenization", "lemmatization", "pos tagging", "huggingface"},
	},
	{
		name: "Computer Vision",
		jobTitles: []string{"computer vision engineer", "cv engineer", "image processing engineer",
			"vision scientist", "perception engineer"},
		primary: []string{"computer vision", "image processing", "object detection", "image recognition",
			"image segmentation", "facial recognition", "ocr", "video analytics"},
		secondary: []string{"opencv", "yolo", "cnn", "convolutional neural network", "image classification",
			"gan", "generative adversarial", "pytorch vision", "detectron"},
	},
	{
		name: "Data Analytics",
		jobTitles: []string{"data analyst", "business analyst", "analytics manager", "bi analyst",
			"reporting analyst", "insights analyst", "marketing analyst"},
		primary: []string{"data analyst", "data analysis", "business intelligence", "bi", "reporting",
			"dashboard", "kpi", "metrics", "insights", "analytics"},
		secondary: []string{"excel", "sql", "tableau", "power bi", "looker", "google analytics",
			"data visualization", "pivot table", "vlookup", "reporting tools"},
	},
	{
		name: "Data Engineering",
		jobTitles: []string{"data engineer", "etl developer", "data pipeline engineer", "big data engineer",
			"data architect", "analytics engineer"},
		primary: []string{"data engineer", "data engineering", "etl", "data pipeline", "data warehouse",
			"data lake", "data modeling", "data architecture", "batch processing", "streaming"},
		secondary: []string{"spark", "hadoop", "airflow", "kafka", "snowflake", "redshift", "bigquery",
			"dbt", "databricks", "hive", "presto"},
	},
	{
		name: "Information Technology",
		jobTitles: []string{"software developer", "software engineer", "programmer", "web developer",
			"full stack developer", "backend developer", "frontend developer", "devops engineer",
			"system administrator", "network engineer", "it manager", "it support"},
		primary: []string{"software development", "programming", "coding", "web development", "application development",
			"system administration", "network administration", "it infrastructure", "devops"},
		secondary: []string{"python", "java", "javascript", "c++", "c#", "react", "angular", "node.js",
			"aws", "azure", "docker", "kubernetes", "linux", "git", "agile", "scrum"},
	},
	{
		name: "Cybersecurity",
		jobTitles: []string{"security analyst", "cybersecurity analyst", "security engineer", "penetration tester",
			"ethical hacker", "soc analyst", "security architect", "ciso"},
		primary: []string{"cybersecurity", "information security", "network security", "penetration testing",
			"vulnerability assessment", "security audit", "incident response", "threat analysis"},
		secondary: []string{"firewall", "siem", "ids", "ips", "encryption", "malware", "phishing",
			"compliance", "iso 27001", "nist", "cissp", "ceh"},
	},
	{
		name: "Accountant",
		jobTitles: []string{"accountant", "senior accountant", "staff accountant", "cpa", "chartered accountant",
			"tax accountant", "audit accountant", "cost accountant", "management accountant"},
		primary: []string{"accounting", "bookkeeping", "financial statements", "general ledger", "accounts payable",
			"accounts receivable", "tax preparation", "audit", "reconciliation", "journal entries"},
		secondary: []string{"gaap", "ifrs", "quickbooks", "tally", "sap", "balance sheet", "income statement",
			"cash flow", "trial balance", "depreciation", "accruals", "tax returns"},
	},
	{
		name: "Finance",
		jobTitles: []string{"financial analyst", "finance manager", "investment analyst", "portfolio manager",
			"treasury analyst", "fp&a analyst", "credit analyst", "risk analyst"},
		primary: []string{"financial analysis", "investment", "portfolio management", "financial modeling",
			"valuation", "corporate finance", "treasury", "risk management", "financial planning"},
		secondary: []string{"excel", "financial statements", "dcf", "npv", "irr", "bloomberg", "capital markets",
			"equity research", "m&a", "derivatives", "cfa", "budgeting", "forecasting"},
	},
	{
		name: "Banking",
		jobTitles: []string{"banker", "bank manager", "loan officer", "credit analyst", "relationship manager",
			"branch manager", "teller", "investment banker", "mortgage specialist"},
		primary: []string{"banking", "loan processing", "credit analysis", "retail banking", "commercial banking",
			"mortgage", "deposit", "kyc", "aml", "banking operations"},
		secondary: []string{"customer service", "financial products", "interest rates", "loan documentation",
			"credit score", "collateral", "banking regulations", "core banking"},
	},
	{
		name: "Advocate",
		jobTitles: []string{"advocate", "lawyer", "attorney", "legal counsel", "paralegal", "legal advisor",
			"corporate counsel", "litigation attorney", "associate attorney"},
		primary: []string{"legal", "law", "litigation", "court", "legal research", "legal drafting",
			"contract review", "legal compliance", "case management", "legal advisory"},
		secondary: []string{"civil law", "criminal law", "corporate law", "contract law", "intellectual property",
			"patent", "trademark", "arbitration", "mediation", "bar council", "legal proceedings"},
	},
	{
		name: "Agriculture",
		jobTitles: []string{"agricultural officer", "agronomist", "farm manager", "agricultural engineer",
			"horticulturist", "crop scientist", "agricultural consultant"},
		primary: []string{"agriculture", "farming", "crop", "horticulture", "agronomy", "livestock",
			"irrigation", "pest control", "soil management", "agricultural practices"},
		secondary: []string{"fertilizer", "seeds", "harvest", "organic farming", "dairy", "poultry",
			"fisheries", "greenhouse", "plantation", "agricultural machinery"},
	},
	{
		name: "Apparel",
		jobTitles: []string{"fashion designer", "apparel designer", "merchandiser", "fashion buyer",
			"stylist", "textile designer", "pattern maker", "garment technologist"},
		primary: []string{"fashion", "apparel", "garment", "textile", "clothing", "fashion design",
			"merchandising", "pattern making", "tailoring", "fashion retail"},
		secondary: []string{"fabric", "embroidery", "sewing", "fashion illustration", "collection",
			"runway", "boutique", "visual merchandising", "fashion marketing", "trend analysis"},
	},
	{
		name: "Arts",
		jobTitles: []string{"artist", "painter", "sculptor", "illustrator", "art director", "creative director",
			"animator", "photographer", "videographer", "musician", "curator"},
		primary: []string{"art", "artist", "painting", "sculpture", "illustration", "fine arts", "visual arts",
			"photography", "animation", "creative", "artistic"},
		secondary: []string{"gallery", "exhibition", "portfolio", "canvas", "drawing", "sketch",
			"cinematography", "music", "performing arts", "theater", "dance"},
	},
	{
		name: "Designer",
		jobTitles: []string{"graphic designer", "ui designer", "ux designer", "product designer", "web designer",
			"visual designer", "interior designer", "industrial designer", "motion designer"},
		primary: []string{"design", "graphic design", "ui design", "ux design", "visual design", "product design",
			"user interface", "user experience", "branding", "logo design"},
		secondary: []string{"photoshop", "illustrator", "figma", "sketch", "indesign", "canva", "adobe",
			"typography", "layout", "wireframe", "prototype", "design thinking"},
	},
	{
		name: "Digital Media",
		jobTitles: []string{"content creator", "social media manager", "digital marketer", "video editor",
			"multimedia specialist", "community manager", "influencer", "youtuber"},
		primary: []string{"digital media", "social media", "content creation", "video production", "video editing",
			"digital content", "multimedia", "social media marketing", "content strategy"},
		secondary: []string{"youtube", "instagram", "tiktok", "premiere pro", "final cut", "after effects",
			"podcast", "blog", "streaming", "engagement", "followers", "viral"},
	},
	{
		name: "Automobile",
		jobTitles: []string{"automotive engineer", "auto mechanic", "vehicle technician", "service advisor",
			"automobile designer", "quality engineer automotive", "production engineer"},
		primary: []string{"automobile", "automotive", "vehicle", "car", "auto", "motor", "automotive engineering",
			"vehicle design", "auto repair", "automotive manufacturing"},
		secondary: []string{"engine", "transmission", "chassis", "brake", "suspension", "diagnostics",
			"electric vehicle", "ev", "hybrid", "assembly line", "dealership"},
	},
	{
		name: "Aviation",
		jobTitles: []string{"pilot", "flight attendant", "cabin crew", "aircraft engineer", "aerospace engineer",
			"air traffic controller", "ground staff", "aviation manager"},
		primary: []string{"aviation", "airline", "aircraft", "flight", "aerospace", "airport",
			"aviation safety", "aircraft maintenance", "flight operations"},
		secondary: []string{"pilot license", "cockpit", "navigation", "cargo", "ground handling",
			"commercial aviation", "private pilot", "helicopter", "drone", "aeronautical"},
	},
	{
		name: "Business Development",
		jobTitles: []string{"business development manager", "bd manager", "business development executive",
			"partnerships manager", "strategic alliance manager", "key account manager"},
		primary: []string{"business development", "client acquisition", "partnership", "strategic alliance",
			"lead generation", "market expansion", "business growth", "new business"},
		secondary: []string{"pitching", "proposal", "rfp", "contract negotiation", "stakeholder management",
			"b2b", "market research", "competitive analysis", "revenue growth"},
	},
	{
		name: "Consultant",
		jobTitles: []string{"consultant", "management consultant", "strategy consultant", "senior consultant",
			"associate consultant", "principal consultant", "advisory"},
		primary: []string{"consulting", "advisory", "management consulting", "strategy consulting",
			"business consulting", "process improvement", "transformation"},
		secondary: []string{"mckinsey", "bcg", "bain", "deloitte", "accenture", "big four",
			"change management", "stakeholder management", "recommendations", "client engagement"},
	},
	{
		name: "BPO",
		jobTitles: []string{"customer service representative", "call center agent", "csr", "team leader bpo",
			"process associate", "customer support executive", "technical support"},
		primary: []string{"bpo", "call center", "customer service", "customer support", "customer care",
			"helpdesk", "technical support", "voice process", "non voice"},
		secondary: []string{"inbound", "outbound", "telemarketing", "first call resolution", "aht",
			"sla", "chat support", "email support", "csat", "quality score"},
	},
	{
		name: "Construction",
		jobTitles: []string{"civil engineer", "site engineer", "project engineer", "construction manager",
			"quantity surveyor", "architect", "structural engineer", "contractor"},
		primary: []string{"construction", "civil engineering", "building", "site management", "project management construction",
			"structural", "architecture", "quantity surveying"},
		secondary: []string{"autocad", "blueprint", "concrete", "foundation", "plumbing", "electrical",
			"hvac", "safety", "building codes", "renovation", "real estate"},
	},
	{
		name: "Chef",
		jobTitles: []string{"chef", "head chef", "executive chef", "sous chef", "pastry chef", "line cook",
			"prep cook", "culinary", "kitchen manager", "cook"},
		primary: []string{"chef", "culinary", "cooking", "kitchen", "food preparation", "cuisine",
			"restaurant", "catering", "menu planning", "food service"},
		secondary: []string{"recipe", "pastry", "baking", "fine dining", "banquet", "buffet",
			"food safety", "haccp", "hospitality", "hotel", "barista", "sommelier"},
	},
	{
		name: "Teacher",
		jobTitles: []string{"teacher", "professor", "lecturer", "instructor", "tutor", "educator",
			"faculty", "academic", "trainer", "teaching assistant", "headmaster", "principal"},
		primary: []string{"teaching", "teacher", "education", "classroom", "curriculum", "lesson planning",
			"pedagogy", "instruction", "academic", "school"},
		secondary: []string{"student", "assessment", "grading", "examination", "syllabus", "mentoring",
			"e-learning", "online teaching", "classroom management", "educational"},
	},
	{
		name: "Engineering",
		jobTitles: []string{"mechanical engineer", "electrical engineer", "electronics engineer", "chemical engineer",
			"production engineer", "maintenance engineer", "process engineer", "quality engineer"},
		primary: []string{"engineering", "mechanical", "electrical", "electronics", "manufacturing",
			"production", "maintenance", "process engineering", "quality control"},
		secondary: []string{"cad", "solidworks", "autocad", "plc", "scada", "automation", "robotics",
			"six sigma", "lean", "iso", "r&d", "prototype", "technical drawing"},
	},
	{
		name: "Fitness",
		jobTitles: []string{"personal trainer", "fitness trainer", "fitness instructor", "gym trainer",
			"yoga instructor", "sports coach", "nutritionist", "dietitian", "wellness coach"},
		primary: []string{"fitness", "personal training", "gym", "workout", "exercise", "training",
			"sports", "yoga", "nutrition", "wellness"},
		secondary: []string{"bodybuilding", "strength training", "cardio", "pilates", "aerobics",
			"crossfit", "diet plan", "weight loss", "muscle building", "health coaching"},
	},
	{
		name: "Healthcare",
		jobTitles: []string{"nurse", "doctor", "physician", "surgeon", "pharmacist", "dentist", "therapist",
			"medical assistant", "healthcare administrator", "lab technician", "paramedic"},
		primary: []string{"healthcare", "medical", "hospital", "clinic", "patient care", "nursing",
			"clinical", "health care", "medical care", "treatment"},
		secondary: []string{"patient", "diagnosis", "medication", "pharmacy", "laboratory", "radiology",
			"icu", "emergency", "ehr", "hipaa", "medical records", "vital signs"},
	},
	{
		name: "HR",
		jobTitles: []string{"hr manager", "hr executive", "recruiter", "talent acquisition", "hr generalist",
			"hr business partner", "compensation manager", "training manager", "hr director"},
		primary: []string{"human resources", "hr", "recruitment", "talent acquisition", "hiring",
			"employee relations", "performance management", "hr management"},
		secondary: []string{"onboarding", "offboarding", "payroll", "benefits", "hris", "workday",
			"training and development", "employee engagement", "retention", "job posting"},
	},
	{
		name: "Public Relations",
		jobTitles: []string{"pr manager", "public relations manager", "communications manager", "pr executive",
			"media relations", "corporate communications", "press officer", "spokesperson"},
		primary: []string{"public relations", "pr", "communications", "media relations", "press release",
			"corporate communications", "reputation management", "public affairs"},
		secondary: []string{"press conference", "media coverage", "crisis management", "journalist",
			"editor", "copywriter", "content writer", "brand communications", "stakeholder"},
	},
	{
		name: "Sales",
		jobTitles: []string{"sales executive", "sales manager", "account executive", "sales representative",
			"business development", "territory manager", "regional sales manager", "salesperson"},
		primary: []string{"sales", "selling", "revenue", "quota", "target", "client acquisition",
			"account management", "sales management", "territory"},
		secondary: []string{"crm", "salesforce", "cold calling", "prospecting", "closing", "negotiation",
			"pipeline", "lead generation", "commission", "retail", "b2b", "b2c"},
	},
}
