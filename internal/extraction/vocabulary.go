// internal/extraction/vocabulary.go
package extraction

// DefaultVocabulary is the predefined list of common tech skills used for
// vocabulary-based skill detection. Entries are matched case-insensitively
// on word boundaries; the casing here is what detected skills are reported
// with.
var DefaultVocabulary = []string{
	// Programming Languages
	"python", "java", "javascript", "typescript", "c++", "c#", "ruby", "go", "golang",
	"rust", "php", "swift", "kotlin", "scala", "r", "matlab", "perl", "bash", "shell",
	"powershell", "lua", "dart", "objective-c", "groovy", "cobol", "fortran", "haskell",

	// Web Frameworks & Libraries
	"django", "flask", "fastapi", "react", "reactjs", "react.js", "angular", "angularjs",
	"vue", "vuejs", "vue.js", "next.js", "nextjs", "nuxt", "nuxtjs", "express", "expressjs",
	"node", "nodejs", "node.js", "spring", "spring boot", "springboot", "laravel", "rails",
	"ruby on rails", "asp.net", ".net", "dotnet", "symfony", "codeigniter", "gatsby",
	"svelte", "ember", "backbone", "jquery", "bootstrap", "tailwind", "tailwindcss",
	"material-ui", "chakra", "ant design", "redux", "mobx", "graphql", "rest", "restful",

	// Databases
	"sql", "mysql", "postgresql", "postgres", "mongodb", "redis", "elasticsearch",
	"cassandra", "oracle", "sqlite", "mariadb", "dynamodb", "firebase", "firestore",
	"couchdb", "neo4j", "memcached", "mssql", "sql server", "aurora", "cockroachdb",

	// Cloud & DevOps
	"aws", "amazon web services", "azure", "gcp", "google cloud", "docker", "kubernetes",
	"k8s", "jenkins", "terraform", "ansible", "puppet", "chef", "circleci", "travis ci",
	"github actions", "gitlab ci", "bitbucket", "heroku", "digitalocean", "vercel",
	"netlify", "cloudflare", "nginx", "apache", "linux", "ubuntu", "centos", "redhat",
	"windows server", "vmware", "vagrant", "prometheus", "grafana", "datadog", "splunk",
	"elk", "logstash", "kibana", "cloudformation", "pulumi", "helm", "istio", "argocd",

	// Data Science & ML
	"machine learning", "deep learning", "artificial intelligence", "ai", "ml",
	"tensorflow", "pytorch", "keras", "scikit-learn", "sklearn", "pandas", "numpy",
	"scipy", "matplotlib", "seaborn", "plotly", "jupyter", "anaconda", "opencv",
	"nlp", "natural language processing", "computer vision", "neural networks",
	"transformers", "hugging face", "bert", "gpt", "llm", "langchain", "openai",
	"spacy", "nltk", "xgboost", "lightgbm", "catboost", "spark", "pyspark", "hadoop",
	"hive", "kafka", "airflow", "mlflow", "kubeflow", "sagemaker", "databricks",

	// Mobile Development
	"android", "ios", "react native", "flutter", "xamarin", "ionic", "cordova",
	"swift ui", "swiftui", "jetpack compose", "mobile development",

	// Version Control & Collaboration
	"git", "github", "gitlab", "svn", "mercurial", "jira", "confluence",
	"trello", "asana", "slack", "teams", "agile", "scrum", "kanban", "ci/cd", "cicd",

	// Testing
	"unit testing", "integration testing", "selenium", "cypress", "jest", "mocha",
	"pytest", "unittest", "testng", "junit", "postman", "swagger", "api testing",
	"load testing", "performance testing", "qa", "quality assurance", "tdd", "bdd",

	// Security
	"cybersecurity", "penetration testing", "owasp", "ssl", "tls", "oauth", "jwt",
	"encryption", "authentication", "authorization", "sso", "ldap", "active directory",

	// Other Technologies
	"microservices", "api", "websocket", "soap", "grpc", "rabbitmq", "celery",
	"asyncio", "multithreading", "concurrency", "design patterns", "oop",
	"functional programming", "data structures", "algorithms", "system design",
	"html", "css", "sass", "scss", "less", "webpack", "babel", "vite", "parcel",
	"npm", "yarn", "pip", "maven", "gradle", "make", "cmake", "json", "xml", "yaml",
	"csv", "excel", "power bi", "tableau", "looker", "etl", "data warehouse",
	"snowflake", "redshift", "bigquery", "dbt", "fivetran", "stitch",
}
