package usecase

import "github.com/puIad/nlp-project/internal/core/domain"

// topicCatalog maps a career field to curated learning topics. The first two
// entries per field are surfaced in feedback; extras are kept for fields with
// richer catalogs.
var topicCatalog = map[string][]domain.TopicSuggestion{
	"Data Science": {
		{Title: "Data Science Full Course", Query: "data science complete course 2024", Reason: "Comprehensive data science training"},
		{Title: "Python for Data Science", Query: "python data science tutorial pandas numpy", Reason: "Essential Python skills for data science"},
		{Title: "Statistics for Data Science", Query: "statistics for data science beginners", Reason: "Strong statistics foundation"},
	},
	"Machine Learning": {
		{Title: "Machine Learning Course", Query: "machine learning full course andrew ng", Reason: "Industry-standard ML education"},
		{Title: "Deep Learning Specialization", Query: "deep learning neural networks course", Reason: "Master neural networks"},
		{Title: "MLOps & Deployment", Query: "mlops machine learning deployment course", Reason: "Production ML skills"},
	},
	"Artificial Intelligence": {
		{Title: "AI Fundamentals Course", Query: "artificial intelligence course beginners", Reason: "Core AI concepts"},
		{Title: "LLM and Generative AI", Query: "large language models gpt course", Reason: "Latest AI technologies"},
	},
	"NLP Engineer": {
		{Title: "NLP with Python", Query: "natural language processing python course", Reason: "Master text processing"},
		{Title: "Transformers & BERT", Query: "transformers bert nlp tutorial", Reason: "Modern NLP architectures"},
	},
	"Computer Vision": {
		{Title: "Computer Vision Course", Query: "computer vision opencv python course", Reason: "Image processing fundamentals"},
		{Title: "Deep Learning for CV", Query: "convolutional neural networks course", Reason: "CNN for vision tasks"},
	},
	"Data Analytics": {
		{Title: "Data Analytics Bootcamp", Query: "data analytics course excel sql tableau", Reason: "Core analytics skills"},
		{Title: "SQL for Data Analysis", Query: "sql for data analysis complete course", Reason: "Essential data querying"},
	},
	"Data Engineering": {
		{Title: "Data Engineering Course", Query: "data engineering pipeline course", Reason: "Build robust data pipelines"},
		{Title: "Apache Spark Tutorial", Query: "apache spark pyspark course", Reason: "Big data processing"},
	},
	"Cybersecurity": {
		{Title: "Cybersecurity Fundamentals", Query: "cybersecurity course beginners", Reason: "Security essentials"},
		{Title: "Ethical Hacking Course", Query: "ethical hacking penetration testing course", Reason: "Offensive security skills"},
	},
	"Accountant": {
		{Title: "Accounting Fundamentals Course", Query: "accounting basics tutorial beginners", Reason: "Master core accounting principles"},
		{Title: "QuickBooks Tutorial", Query: "quickbooks tutorial full course", Reason: "Learn essential accounting software"},
		{Title: "Excel for Accountants", Query: "excel for accountants advanced tutorial", Reason: "Excel skills are crucial for accounting"},
	},
	"Advocate": {
		{Title: "Legal Research Skills", Query: "legal research methods tutorial", Reason: "Improve legal research capabilities"},
		{Title: "Contract Drafting Course", Query: "contract drafting basics course", Reason: "Essential skill for legal practice"},
	},
	"Agriculture": {
		{Title: "Modern Farming Techniques", Query: "modern agriculture techniques course", Reason: "Stay updated with agricultural innovations"},
		{Title: "Sustainable Agriculture", Query: "sustainable farming practices tutorial", Reason: "Growing demand for sustainable practices"},
	},
	"Apparel": {
		{Title: "Fashion Design Fundamentals", Query: "fashion design course beginners", Reason: "Build core fashion design skills"},
		{Title: "Fashion Merchandising", Query: "fashion merchandising retail course", Reason: "Understanding fashion business"},
	},
	"Arts": {
		{Title: "Digital Art Masterclass", Query: "digital art tutorial beginners", Reason: "Expand your artistic digital skills"},
		{Title: "Building Art Portfolio", Query: "art portfolio tips professional", Reason: "Create a compelling portfolio"},
	},
	"Automobile": {
		{Title: "Automotive Technology Course", Query: "automotive engineering basics course", Reason: "Understand modern vehicle systems"},
		{Title: "Electric Vehicle Technology", Query: "electric vehicle technology course", Reason: "EV is the future of automotive"},
	},
	"Aviation": {
		{Title: "Aviation Industry Overview", Query: "aviation industry career guide", Reason: "Understand aviation career paths"},
		{Title: "Aircraft Systems Course", Query: "aircraft systems fundamentals", Reason: "Technical aviation knowledge"},
	},
	"Banking": {
		{Title: "Banking Operations Course", Query: "banking operations fundamentals", Reason: "Master banking processes"},
		{Title: "Financial Services Training", Query: "financial services industry training", Reason: "Understand financial services"},
	},
	"BPO": {
		{Title: "Customer Service Excellence", Query: "customer service training course", Reason: "Enhance customer handling skills"},
		{Title: "Communication Skills Training", Query: "professional communication skills course", Reason: "Critical for BPO success"},
	},
	"Business Development": {
		{Title: "Business Development Strategy", Query: "business development course strategy", Reason: "Master BD techniques"},
		{Title: "Negotiation Skills", Query: "negotiation skills masterclass", Reason: "Essential for closing deals"},
	},
	"Chef": {
		{Title: "Culinary Arts Course", Query: "culinary arts professional training", Reason: "Enhance cooking techniques"},
		{Title: "Food Safety Certification", Query: "food safety haccp training", Reason: "Required certification for chefs"},
		{Title: "Kitchen Management", Query: "kitchen management skills course", Reason: "Advance to leadership roles"},
	},
	"Construction": {
		{Title: "Construction Management", Query: "construction management course", Reason: "Project management in construction"},
		{Title: "AutoCAD for Construction", Query: "autocad construction tutorial", Reason: "Essential design software"},
	},
	"Consultant": {
		{Title: "Management Consulting Skills", Query: "management consulting course", Reason: "Core consulting competencies"},
		{Title: "Problem Solving Frameworks", Query: "consulting problem solving frameworks", Reason: "Structured thinking approach"},
	},
	"Designer": {
		{Title: "UI/UX Design Bootcamp", Query: "ui ux design course complete", Reason: "Master modern design principles"},
		{Title: "Figma Masterclass", Query: "figma tutorial complete course", Reason: "Industry-standard design tool"},
	},
	"Digital Media": {
		{Title: "Video Editing Masterclass", Query: "video editing premiere pro tutorial", Reason: "Create professional video content"},
		{Title: "Social Media Marketing", Query: "social media marketing course 2024", Reason: "Grow digital presence"},
	},
	"Engineering": {
		{Title: "Engineering Fundamentals", Query: "engineering principles course", Reason: "Strengthen core engineering knowledge"},
		{Title: "SolidWorks Tutorial", Query: "solidworks tutorial beginners", Reason: "Essential CAD software"},
	},
	"Finance": {
		{Title: "Financial Modeling Course", Query: "financial modeling excel course", Reason: "Key skill for finance roles"},
		{Title: "Investment Analysis", Query: "investment analysis fundamentals", Reason: "Understand investment principles"},
	},
	"Fitness": {
		{Title: "Personal Training Certification", Query: "personal trainer certification course", Reason: "Get certified as a trainer"},
		{Title: "Nutrition Fundamentals", Query: "nutrition basics for trainers", Reason: "Complete fitness knowledge"},
	},
	"Healthcare": {
		{Title: "Healthcare Management", Query: "healthcare management course", Reason: "Advance in healthcare careers"},
		{Title: "Patient Care Skills", Query: "patient care skills training", Reason: "Core healthcare competency"},
	},
	"HR": {
		{Title: "HR Management Course", Query: "human resources management course", Reason: "Master HR fundamentals"},
		{Title: "Recruitment and Talent Acquisition", Query: "recruitment skills training", Reason: "Essential HR skill"},
	},
	"Information Technology": {
		{Title: "Full Stack Development Course", Query: "full stack web development course 2024", Reason: "Comprehensive tech skills"},
		{Title: "Cloud Computing Fundamentals", Query: "aws azure cloud computing beginners", Reason: "Cloud is essential for IT"},
	},
	"Public Relations": {
		{Title: "PR and Communications Course", Query: "public relations course beginners", Reason: "Master PR fundamentals"},
		{Title: "Media Relations Training", Query: "media relations skills training", Reason: "Key PR competency"},
	},
	"Sales": {
		{Title: "Sales Techniques Masterclass", Query: "sales techniques training course", Reason: "Improve closing rates"},
		{Title: "CRM and Salesforce Training", Query: "salesforce crm tutorial", Reason: "Essential sales tools"},
	},
	"Teacher": {
		{Title: "Teaching Methods Course", Query: "effective teaching methods course", Reason: "Enhance teaching effectiveness"},
		{Title: "Classroom Management", Query: "classroom management strategies", Reason: "Better student engagement"},
		{Title: "Online Teaching Skills", Query: "online teaching best practices", Reason: "Essential for modern education"},
	},
}
