package usecase

// skillCategory is one named group of the skills taxonomy. Categories and the
// skills inside them are ordered; extraction reports skills in this order.
type skillCategory struct {
	name   string
	skills []string
}

var skillsTaxonomy = []skillCategory{
	{name: "programming_languages", skills: []string{
		"python", "java", "javascript", "typescript", "c++", "c#", "c", "ruby", "php", "swift",
		"kotlin", "go", "golang", "rust", "scala", "r", "matlab", "perl", "shell", "bash",
		"powershell", "sql", "html", "css", "sass", "less", "objective-c", "dart", "lua",
		"groovy", "visual basic", "vba", "cobol", "fortran", "assembly", "haskell", "elixir",
	}},
	{name: "frameworks_libraries", skills: []string{
		"react", "angular", "vue", "svelte", "django", "flask", "fastapi", "spring", "spring boot",
		"node.js", "express", "nestjs", "rails", "ruby on rails", "laravel", "symfony", ".net",
		"asp.net", "blazor", "next.js", "nuxt.js", "gatsby", "remix", "jquery", "bootstrap",
		"tailwind", "material ui", "chakra ui", "redux", "mobx", "rxjs", "graphql", "apollo",
	}},
	{name: "data_science_ml", skills: []string{
		"tensorflow", "pytorch", "keras", "scikit-learn", "sklearn", "pandas", "numpy", "scipy",
		"matplotlib", "seaborn", "plotly", "bokeh", "xgboost", "lightgbm", "catboost",
		"machine learning", "deep learning", "neural networks", "nlp", "natural language processing",
		"computer vision", "reinforcement learning", "random forest", "decision tree", "svm",
		"clustering", "regression", "classification", "feature engineering", "model deployment",
		"mlops", "kubeflow", "mlflow", "huggingface", "transformers", "bert", "gpt", "llm",
		"opencv", "yolo", "spacy", "nltk", "gensim", "word2vec", "embeddings",
	}},
	{name: "databases", skills: []string{
		"mysql", "postgresql", "postgres", "mongodb", "redis", "elasticsearch", "oracle",
		"sql server", "mssql", "sqlite", "cassandra", "dynamodb", "firebase", "firestore",
		"neo4j", "couchdb", "mariadb", "aurora", "cockroachdb", "timescaledb", "influxdb",
	}},
	{name: "data_engineering", skills: []string{
		"spark", "pyspark", "hadoop", "hive", "presto", "trino", "airflow", "luigi", "dagster",
		"kafka", "kinesis", "rabbitmq", "snowflake", "redshift", "bigquery", "databricks",
		"dbt", "fivetran", "etl", "elt", "data pipeline", "data warehouse", "data lake",
		"delta lake", "parquet", "avro", "iceberg", "data modeling",
	}},
	{name: "cloud_devops", skills: []string{
		"aws", "amazon web services", "azure", "microsoft azure", "gcp", "google cloud",
		"docker", "kubernetes", "k8s", "jenkins", "gitlab ci", "github actions", "circleci",
		"terraform", "ansible", "puppet", "chef", "cloudformation", "pulumi", "helm",
		"linux", "unix", "bash", "shell scripting", "nginx", "apache", "load balancing",
		"ci/cd", "continuous integration", "continuous deployment", "devops", "sre",
		"monitoring", "prometheus", "grafana", "datadog", "splunk", "elk", "new relic",
	}},
	{name: "analytics_bi", skills: []string{
		"tableau", "power bi", "looker", "qlik", "metabase", "superset", "google analytics",
		"adobe analytics", "mixpanel", "amplitude", "excel", "advanced excel", "pivot tables",
		"vlookup", "xlookup", "data visualization", "dashboard", "reporting", "kpi", "metrics",
		"google data studio", "domo", "sisense", "thoughtspot", "sas", "spss", "stata",
	}},
	{name: "design_tools", skills: []string{
		"photoshop", "adobe photoshop", "illustrator", "adobe illustrator", "indesign",
		"figma", "sketch", "xd", "adobe xd", "canva", "lightroom", "after effects",
		"premiere pro", "final cut pro", "davinci resolve", "blender", "maya", "3ds max",
		"cinema 4d", "zbrush", "substance painter", "procreate", "coreldraw", "invision",
	}},
	{name: "design_skills", skills: []string{
		"ui design", "ux design", "user interface", "user experience", "graphic design",
		"visual design", "product design", "web design", "mobile design", "responsive design",
		"typography", "color theory", "layout", "wireframing", "prototyping", "mockups",
		"design thinking", "design systems", "branding", "logo design", "illustration",
		"motion graphics", "animation", "video editing", "photo editing", "print design",
	}},
	{name: "finance_skills", skills: []string{
		"financial analysis", "financial modeling", "valuation", "dcf", "npv", "irr",
		"budgeting", "forecasting", "variance analysis", "p&l", "balance sheet", "cash flow",
		"financial statements", "gaap", "ifrs", "audit", "tax", "compliance", "sox",
		"treasury", "risk management", "credit analysis", "investment analysis",
		"portfolio management", "equity research", "m&a", "due diligence", "cfa", "cpa",
	}},
	{name: "accounting_skills", skills: []string{
		"bookkeeping", "accounts payable", "accounts receivable", "general ledger",
		"journal entries", "reconciliation", "trial balance", "depreciation", "amortization",
		"accruals", "prepaid expenses", "quickbooks", "sage", "xero", "tally", "sap",
		"oracle financials", "cost accounting", "management accounting", "tax returns",
		"payroll processing", "invoicing", "billing", "collections", "year end closing",
	}},
	{name: "sales_skills", skills: []string{
		"sales", "selling", "b2b sales", "b2c sales", "inside sales", "field sales",
		"account management", "territory management", "pipeline management", "lead generation",
		"prospecting", "cold calling", "closing", "negotiation", "quota achievement",
		"crm", "salesforce", "hubspot", "zoho", "pipedrive", "sales forecasting",
		"client relationship", "customer acquisition", "upselling", "cross-selling",
	}},
	{name: "marketing_skills", skills: []string{
		"digital marketing", "content marketing", "social media marketing", "email marketing",
		"seo", "sem", "ppc", "google ads", "facebook ads", "instagram ads", "linkedin ads",
		"marketing automation", "hubspot", "marketo", "mailchimp", "brand management",
		"market research", "competitive analysis", "campaign management", "lead nurturing",
		"conversion optimization", "a/b testing", "analytics", "roi analysis",
	}},
	{name: "hr_skills", skills: []string{
		"recruitment", "talent acquisition", "sourcing", "screening", "interviewing",
		"onboarding", "offboarding", "employee relations", "performance management",
		"compensation", "benefits administration", "payroll", "hris", "workday", "successfactors",
		"bamboohr", "adp", "training and development", "learning management", "succession planning",
		"employee engagement", "retention", "labor law", "compliance", "hr policies",
	}},
	{name: "healthcare_skills", skills: []string{
		"patient care", "clinical skills", "nursing", "medical terminology", "ehr",
		"epic", "cerner", "hipaa", "patient assessment", "vital signs", "medication administration",
		"wound care", "iv therapy", "phlebotomy", "cpr", "bls", "acls", "first aid",
		"infection control", "patient education", "care planning", "documentation",
		"medical coding", "icd-10", "cpt", "medical billing", "health insurance",
	}},
	{name: "education_skills", skills: []string{
		"teaching", "instruction", "curriculum development", "lesson planning",
		"classroom management", "student assessment", "grading", "differentiated instruction",
		"educational technology", "lms", "canvas", "blackboard", "moodle", "google classroom",
		"special education", "iep", "student engagement", "parent communication",
		"instructional design", "e-learning development", "articulate", "storyline",
	}},
	{name: "culinary_skills", skills: []string{
		"cooking", "food preparation", "knife skills", "menu planning", "recipe development",
		"food safety", "haccp", "servsafe", "kitchen management", "inventory management",
		"cost control", "portion control", "plating", "presentation", "baking", "pastry",
		"grilling", "sauteing", "catering", "banquet", "fine dining", "fast casual",
		"food allergies", "dietary restrictions", "nutrition", "sanitation",
	}},
	{name: "hospitality_skills", skills: []string{
		"customer service", "guest relations", "front desk", "reservations", "check-in",
		"check-out", "concierge", "hotel operations", "housekeeping", "event planning",
		"banquet management", "food and beverage", "pos systems", "opera", "micros",
		"upselling", "complaint handling", "guest satisfaction",
	}},
	{name: "legal_skills", skills: []string{
		"legal research", "legal writing", "contract drafting", "contract review",
		"litigation", "legal compliance", "regulatory", "due diligence", "discovery",
		"pleadings", "motions", "depositions", "case management", "westlaw", "lexisnexis",
		"corporate law", "intellectual property", "employment law", "real estate law",
		"criminal law", "civil litigation", "mediation", "arbitration", "negotiations",
	}},
	{name: "engineering_skills", skills: []string{
		"mechanical design", "electrical design", "circuit design", "pcb design",
		"cad", "autocad", "solidworks", "catia", "creo", "inventor", "ansys", "matlab",
		"simulink", "plc programming", "scada", "hmi", "pid control", "automation",
		"robotics", "cnc", "manufacturing", "quality control", "six sigma", "lean",
		"kaizen", "iso 9001", "fmea", "root cause analysis", "gd&t", "tolerance analysis",
	}},
	{name: "agriculture_skills", skills: []string{
		"crop management", "soil management", "irrigation", "pest control", "fertilization",
		"harvesting", "planting", "greenhouse management", "organic farming", "sustainable agriculture",
		"livestock management", "dairy farming", "poultry farming", "aquaculture",
		"agricultural machinery", "tractor operation", "precision agriculture", "gis",
		"crop rotation", "integrated pest management", "seed selection", "yield optimization",
	}},
	{name: "soft_skills", skills: []string{
		"leadership", "management", "communication", "verbal communication", "written communication",
		"presentation", "public speaking", "teamwork", "collaboration", "problem solving",
		"critical thinking", "analytical thinking", "decision making", "time management",
		"project management", "agile", "scrum", "kanban", "strategic thinking", "planning",
		"organization", "attention to detail", "multitasking", "adaptability", "flexibility",
		"creativity", "innovation", "negotiation", "conflict resolution", "customer service",
		"interpersonal skills", "emotional intelligence", "stakeholder management",
		"cross-functional collaboration", "mentoring", "coaching", "training",
	}},
	{name: "project_management", skills: []string{
		"project management", "pmp", "prince2", "agile", "scrum", "kanban", "waterfall",
		"jira", "asana", "trello", "monday.com", "ms project", "smartsheet", "basecamp",
		"sprint planning", "backlog management", "stakeholder management", "risk management",
		"resource planning", "budget management", "scope management", "timeline management",
		"gantt chart", "milestone tracking", "status reporting", "change management",
	}},
}
