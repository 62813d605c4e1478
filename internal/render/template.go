package render

// pageTemplate is the whole dashboard document. The architecture diagram is
// whitespace-sensitive: the pre-padded Diagram* cells keep the box edges
// aligned, so the literal spacing around them must not be reflowed.
const pageTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>Terraform Remote State Dashboard - {{.Mode}}</title>
    <style>
        * { box-sizing: border-box; margin: 0; padding: 0; }
        body {
            font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif;
            background: linear-gradient(135deg, #1a1a2e 0%, #16213e 100%);
            min-height: 100vh;
            color: #fff;
            padding: 20px;
        }

        .header {
            text-align: center;
            padding: 30px;
            margin-bottom: 30px;
        }
        .header h1 {
            font-size: 2.5em;
            margin-bottom: 10px;
            background: linear-gradient(90deg, #00d9ff, #ff6b6b);
            -webkit-background-clip: text;
            -webkit-text-fill-color: transparent;
        }
        .header p { color: #888; font-size: 1.1em; }
        .header .mode {
            display: inline-block;
            background: {{if .RealAWS}}#ff6b6b{{else}}#00d9ff{{end}};
            color: #1a1a2e;
            padding: 5px 15px;
            border-radius: 20px;
            font-size: 0.9em;
            margin-top: 10px;
        }

        .stats {
            display: flex;
            justify-content: center;
            gap: 20px;
            margin-bottom: 40px;
            flex-wrap: wrap;
        }
        .stat-card {
            background: rgba(255,255,255,0.1);
            border-radius: 15px;
            padding: 20px 40px;
            text-align: center;
            backdrop-filter: blur(10px);
            border: 1px solid rgba(255,255,255,0.1);
        }
        .stat-card .number {
            font-size: 3em;
            font-weight: bold;
            color: #00d9ff;
        }
        .stat-card .label { color: #888; margin-top: 5px; }

        .section {
            background: rgba(255,255,255,0.05);
            border-radius: 15px;
            padding: 25px;
            margin-bottom: 25px;
            border: 1px solid rgba(255,255,255,0.1);
            cursor: pointer;
            transition: transform 0.2s, box-shadow 0.2s;
        }
        .section:hover {
            transform: translateY(-2px);
            box-shadow: 0 8px 25px rgba(0,217,255,0.2);
        }
        .section h2 {
            color: #00d9ff;
            margin-bottom: 20px;
            display: flex;
            align-items: center;
            gap: 10px;
        }
        .section h2 .icon { font-size: 1.5em; }

        .resource-grid {
            display: grid;
            grid-template-columns: repeat(auto-fill, minmax(350px, 1fr));
            gap: 15px;
        }
        .resource-card {
            background: rgba(0,0,0,0.3);
            border-radius: 10px;
            padding: 20px;
            border-left: 4px solid #00d9ff;
        }
        .resource-card.s3 { border-left-color: #ff6b6b; }
        .resource-card.dynamodb { border-left-color: #feca57; }
        .resource-card.iam { border-left-color: #45b7d1; }
        .resource-card.keypair { border-left-color: #96ceb4; }
        .resource-card.ec2 { border-left-color: #4ecdc4; }
        .resource-card.sg { border-left-color: #ff9ff3; }

        .resource-card h3 {
            color: #fff;
            margin-bottom: 10px;
            font-size: 1.1em;
            word-break: break-all;
        }
        .resource-card .id {
            font-family: monospace;
            color: #888;
            font-size: 0.85em;
            word-break: break-all;
        }
        .resource-card .details {
            margin-top: 10px;
            font-size: 0.9em;
        }
        .resource-card .details span {
            display: inline-block;
            background: rgba(255,255,255,0.1);
            padding: 3px 8px;
            border-radius: 4px;
            margin: 2px;
        }

        .status-running { color: #00ff88; }
        .status-active { color: #00ff88; }
        .status-Active { color: #00ff88; }
        .status-ACTIVE { color: #00ff88; }
        .status-enabled { color: #00ff88; }
        .status-Enabled { color: #00ff88; }

        .empty-state {
            text-align: center;
            color: #666;
            padding: 40px;
        }

        .architecture {
            background: rgba(0,0,0,0.4);
            border-radius: 15px;
            padding: 30px;
            margin-bottom: 25px;
            font-family: monospace;
            white-space: pre;
            overflow-x: auto;
            line-height: 1.8;
            color: #00d9ff;
            font-size: 14px;
        }

        .refresh-btn {
            position: fixed;
            bottom: 30px;
            right: 30px;
            background: #00d9ff;
            color: #1a1a2e;
            border: none;
            padding: 15px 30px;
            border-radius: 50px;
            font-size: 1em;
            cursor: pointer;
            box-shadow: 0 4px 15px rgba(0,217,255,0.3);
        }
        .refresh-btn:hover { background: #00ff88; }

        /* Modal Styles */
        .modal {
            display: none;
            position: fixed;
            z-index: 1000;
            left: 0;
            top: 0;
            width: 100%;
            height: 100%;
            background-color: rgba(0,0,0,0.85);
            backdrop-filter: blur(5px);
        }
        .modal.active { display: flex; align-items: center; justify-content: center; }
        .modal-content {
            background: linear-gradient(135deg, #1a1a2e, #16213e);
            border-radius: 16px;
            padding: 30px;
            max-width: 700px;
            max-height: 80vh;
            overflow-y: auto;
            position: relative;
            box-shadow: 0 20px 60px rgba(0,0,0,0.5);
            border: 1px solid rgba(0,217,255,0.2);
        }
        .modal-close {
            position: absolute;
            top: 15px;
            right: 20px;
            font-size: 28px;
            cursor: pointer;
            color: #888;
            transition: color 0.2s;
        }
        .modal-close:hover { color: #fff; }
        .modal-title {
            font-size: 1.8em;
            margin-bottom: 20px;
            color: #00d9ff;
        }
        .modal-section {
            margin-bottom: 20px;
        }
        .modal-section h4 {
            color: #00ff88;
            margin-bottom: 10px;
        }
        .modal-section p {
            line-height: 1.6;
            color: #ccc;
        }
        .modal-section ul {
            margin-left: 20px;
            line-height: 1.8;
            color: #ccc;
        }
        .modal-section code {
            background: rgba(0,217,255,0.2);
            padding: 2px 8px;
            border-radius: 4px;
            font-family: monospace;
            color: #00d9ff;
        }
        .modal-terraform {
            background: rgba(0,0,0,0.4);
            border-radius: 8px;
            padding: 15px;
            font-family: monospace;
            font-size: 0.85em;
            color: #feca57;
            margin-top: 10px;
            white-space: pre-wrap;
        }
        .modal-example {
            background: rgba(0,217,255,0.1);
            border-left: 4px solid #00d9ff;
            padding: 15px;
            border-radius: 0 8px 8px 0;
            margin-top: 15px;
        }
        .modal-example strong { color: #00d9ff; }
    </style>
</head>
<body>
    <div class="header">
        <h1>Terraform Remote State Dashboard</h1>
        <p>S3 Backend, IAM, and Compute Resources</p>
        <span class="mode">{{.Mode}}</span>
    </div>

    <div class="stats">
        <div class="stat-card">
            <div class="number">{{len .Buckets}}</div>
            <div class="label">S3 Buckets</div>
        </div>
        <div class="stat-card">
            <div class="number">{{len .Tables}}</div>
            <div class="label">DynamoDB Tables</div>
        </div>
        <div class="stat-card">
            <div class="number">{{len .Users}}</div>
            <div class="label">IAM Users</div>
        </div>
        <div class="stat-card">
            <div class="number">{{len .Instances}}</div>
            <div class="label">EC2 Instances</div>
        </div>
    </div>
{{if .ShowDiagram}}
    <div class="architecture">
                    TERRAFORM REMOTE STATE ARCHITECTURE
                    ===================================

    +----------------------+          +----------------------+
    |   Your Computer      |          |   AWS / LocalStack   |
    |                      |          |                      |
    |  terraform apply ----+--------->|  S3 Bucket           |
    |                      |          |  {{.DiagramBucket}} |
    |  Stores state in S3  |          |  (State Storage)     |
    |                      |          +----------------------+
    |                      |                    |
    |                      |          +----------------------+
    |  Acquires lock ----->|--------->|  DynamoDB Table      |
    |                      |          |  {{.DiagramTable}}|
    |  (Before changes)    |          |  (State Locking)     |
    |                      |          +----------------------+
    +----------------------+
                                      +----------------------+
                                      |  IAM User + Keys     |
                                      |  (Access Credentials)|
                                      +----------------------+
                                               |
                                      +--------v-------------+
                                      |  {{.DiagramInstance}}|
                                      |  + SSH Key Pair      |
                                      |  + Security Group    |
                                      +----------------------+
    </div>
{{end}}
    <div class="section" onclick="showModal('s3')">
        <h2><span class="icon">🪣</span> S3 Buckets (State Storage) <span style="font-size:0.5em;color:#888;margin-left:10px;">Click to learn more</span></h2>
        <div class="resource-grid">
{{range .Buckets}}
            <div class="resource-card s3">
                <h3>{{.Name}}</h3>
                <div class="details">
                    <span class="status-{{lower .Versioning}}">Versioning: {{.Versioning}}</span>
                </div>
            </div>
{{else}}<div class="empty-state">No S3 buckets found. Run terraform apply in the backend/ folder!</div>{{end}}
        </div>
    </div>

    <div class="section" onclick="showModal('dynamodb')">
        <h2><span class="icon">🗄️</span> DynamoDB Tables (State Locking) <span style="font-size:0.5em;color:#888;margin-left:10px;">Click to learn more</span></h2>
        <div class="resource-grid">
{{range .Tables}}
            <div class="resource-card dynamodb">
                <h3>{{.Name}}</h3>
                <div class="details">
                    <span>Hash Key: {{.HashKey}}</span>
                    <span class="status-{{lower .Status}}">{{.Status}}</span>
                </div>
            </div>
{{else}}<div class="empty-state">No DynamoDB tables found. Run terraform apply in the backend/ folder!</div>{{end}}
        </div>
    </div>

    <div class="section" onclick="showModal('iam')">
        <h2><span class="icon">👤</span> IAM Users &amp; Access Keys <span style="font-size:0.5em;color:#888;margin-left:10px;">Click to learn more</span></h2>
        <div class="resource-grid">
{{range .Users}}
            <div class="resource-card iam">
                <h3>{{.Name}}</h3>
                <div class="id">{{.ARN}}</div>
                <div class="details">
                    <div>Access Keys: {{if .AccessKeys}}{{range .AccessKeys}}<span class="status-{{lower .Status}}">{{keyID .ID}}</span> {{end}}{{else}}None{{end}}</div>
                    <div>Policies: {{policyList .Policies}}</div>
                </div>
            </div>
{{else}}<div class="empty-state">No IAM users found. Run terraform apply in the iam/ folder!</div>{{end}}
        </div>
    </div>

    <div class="section" onclick="showModal('keypair')">
        <h2><span class="icon">🔑</span> SSH Key Pairs <span style="font-size:0.5em;color:#888;margin-left:10px;">Click to learn more</span></h2>
        <div class="resource-grid">
{{range .KeyPairs}}
            <div class="resource-card keypair">
                <h3>{{.Name}}</h3>
                <div class="id">{{fingerprint .Fingerprint}}</div>
                <div class="details">
                    <span>Type: {{.Type}}</span>
                </div>
            </div>
{{else}}<div class="empty-state">No SSH key pairs found. Run terraform apply in the compute/ folder!</div>{{end}}
        </div>
    </div>

    <div class="section" onclick="showModal('ec2')">
        <h2><span class="icon">💻</span> EC2 Instances <span style="font-size:0.5em;color:#888;margin-left:10px;">Click to learn more</span></h2>
        <div class="resource-grid">
{{range .Instances}}
            <div class="resource-card ec2">
                <h3>{{.Name}}</h3>
                <div class="id">{{.ID}}</div>
                <div class="details">
                    <span>{{.Type}}</span>
                    <span class="status-{{.State}}">{{.State}}</span>
                    <span>IP: {{if .PublicIP}}{{.PublicIP}}{{else if .PrivateIP}}{{.PrivateIP}}{{else}}N/A{{end}}</span>
                    <span>Key: {{.KeyName}}</span>
                </div>
            </div>
{{else}}<div class="empty-state">No EC2 instances found. Run terraform apply in the compute/ folder!</div>{{end}}
        </div>
    </div>

    <div class="section" onclick="showModal('sg')">
        <h2><span class="icon">🔒</span> Security Groups <span style="font-size:0.5em;color:#888;margin-left:10px;">Click to learn more</span></h2>
        <div class="resource-grid">
{{range .SecurityGroups}}
            <div class="resource-card sg">
                <h3>{{.Name}}</h3>
                <div class="id">{{.ID}}</div>
                <div class="details">
                    <div>{{ruleLines .IngressRules}}</div>
                </div>
            </div>
{{else}}<div class="empty-state">No security groups found (besides default)</div>{{end}}
        </div>
    </div>

    <button class="refresh-btn" onclick="location.reload()">🔄 Refresh</button>

    <!-- Modal Container -->
    <div id="modal" class="modal" onclick="if(event.target===this)closeModal()">
        <div class="modal-content">
            <span class="modal-close" onclick="closeModal()">&times;</span>
            <div id="modal-body"></div>
        </div>
    </div>

    <!-- Static educational content, one block per resource category -->
    <template id="tpl-s3">
        <div class="modal-title">🪣 S3 Backend for Terraform State</div>
        <div class="modal-section">
            <h4>What is Terraform State?</h4>
            <p>Terraform keeps track of all resources it manages in a "state file". This file maps your configuration to real-world resources and stores metadata like resource IDs.</p>
        </div>
        <div class="modal-section">
            <h4>Why Store State in S3?</h4>
            <ul>
                <li><strong>Team Collaboration</strong> - Everyone uses the same state</li>
                <li><strong>Durability</strong> - S3 has 99.999999999% durability</li>
                <li><strong>Versioning</strong> - Roll back to previous states</li>
                <li><strong>Encryption</strong> - Protect sensitive data</li>
            </ul>
        </div>
        <div class="modal-section">
            <h4>Terraform Example</h4>
            <div class="modal-terraform">terraform {
  backend "s3" {
    bucket         = "my-terraform-state"
    key            = "project/terraform.tfstate"
    region         = "us-east-1"
    dynamodb_table = "terraform-locks"
    encrypt        = true
  }
}</div>
        </div>
        <div class="modal-example">
            <strong>Important:</strong> Always enable versioning and encryption on your state bucket. State files often contain sensitive data like passwords and API keys.
        </div>
    </template>

    <template id="tpl-dynamodb">
        <div class="modal-title">🗄️ DynamoDB for State Locking</div>
        <div class="modal-section">
            <h4>Why State Locking?</h4>
            <p>Without locking, two people running terraform apply at the same time could corrupt the state file. DynamoDB provides distributed locking to prevent this.</p>
        </div>
        <div class="modal-section">
            <h4>How It Works</h4>
            <ul>
                <li>Before any write operation, Terraform acquires a lock</li>
                <li>The lock is stored as an item in DynamoDB</li>
                <li>Other operations wait until the lock is released</li>
                <li>Lock is automatically released after operation completes</li>
            </ul>
        </div>
        <div class="modal-section">
            <h4>Terraform Example</h4>
            <div class="modal-terraform">resource "aws_dynamodb_table" "terraform_locks" {
  name         = "terraform-locks"
  billing_mode = "PAY_PER_REQUEST"
  hash_key     = "LockID"  # Must be exactly "LockID"

  attribute {
    name = "LockID"
    type = "S"
  }
}</div>
        </div>
        <div class="modal-example">
            <strong>Critical:</strong> The hash key MUST be named exactly "LockID" (case-sensitive). Terraform expects this specific name.
        </div>
    </template>

    <template id="tpl-iam">
        <div class="modal-title">👤 IAM Users &amp; Access Keys</div>
        <div class="modal-section">
            <h4>What are IAM Users?</h4>
            <p>IAM Users are identities in AWS that can authenticate and be authorized to use AWS services. Each user has credentials (password or access keys) to access AWS.</p>
        </div>
        <div class="modal-section">
            <h4>Access Keys</h4>
            <ul>
                <li><strong>Access Key ID</strong> - Like a username (safe to share)</li>
                <li><strong>Secret Access Key</strong> - Like a password (KEEP SECRET!)</li>
                <li>Used for programmatic access (CLI, SDK, Terraform)</li>
                <li>Can be rotated without changing the user</li>
            </ul>
        </div>
        <div class="modal-section">
            <h4>Terraform Example</h4>
            <div class="modal-terraform">resource "aws_iam_user" "terraform" {
  name = "terraform-user"
}

resource "aws_iam_access_key" "terraform" {
  user = aws_iam_user.terraform.name
}

output "secret_access_key" {
  value     = aws_iam_access_key.terraform.secret
  sensitive = true  # Don't show in logs!
}</div>
        </div>
        <div class="modal-example">
            <strong>Security Best Practice:</strong> Never commit access keys to git! Use environment variables or AWS profiles. Rotate keys regularly.
        </div>
    </template>

    <template id="tpl-keypair">
        <div class="modal-title">🔑 SSH Key Pairs</div>
        <div class="modal-section">
            <h4>What are SSH Key Pairs?</h4>
            <p>SSH key pairs provide secure access to EC2 instances. They use public-key cryptography: AWS stores the public key, you keep the private key.</p>
        </div>
        <div class="modal-section">
            <h4>How They Work</h4>
            <ul>
                <li><strong>Public Key</strong> - Stored on the EC2 instance</li>
                <li><strong>Private Key</strong> - Stored on your computer (.pem file)</li>
                <li>Only the private key holder can log in</li>
                <li>Much more secure than passwords</li>
            </ul>
        </div>
        <div class="modal-section">
            <h4>Terraform Example</h4>
            <div class="modal-terraform">resource "tls_private_key" "ssh" {
  algorithm = "RSA"
  rsa_bits  = 4096
}

resource "aws_key_pair" "deployer" {
  key_name   = "my-key"
  public_key = tls_private_key.ssh.public_key_openssh
}

resource "local_file" "private_key" {
  content         = tls_private_key.ssh.private_key_pem
  filename        = "private-key.pem"
  file_permission = "0400"
}</div>
        </div>
        <div class="modal-example">
            <strong>Usage:</strong> <code>ssh -i private-key.pem ec2-user@IP_ADDRESS</code>
        </div>
    </template>

    <template id="tpl-ec2">
        <div class="modal-title">💻 EC2 Instances</div>
        <div class="modal-section">
            <h4>What is EC2?</h4>
            <p>EC2 (Elastic Compute Cloud) provides virtual servers in the cloud. You can launch instances, install software, and run applications - like physical servers but on-demand.</p>
        </div>
        <div class="modal-section">
            <h4>Key Components</h4>
            <ul>
                <li><strong>AMI</strong> - The operating system image</li>
                <li><strong>Instance Type</strong> - CPU, memory, network (t2.micro is free tier)</li>
                <li><strong>Key Pair</strong> - SSH access credentials</li>
                <li><strong>Security Group</strong> - Firewall rules</li>
            </ul>
        </div>
        <div class="modal-section">
            <h4>Terraform Example</h4>
            <div class="modal-terraform">data "aws_ami" "amazon_linux" {
  most_recent = true
  owners      = ["amazon"]
  filter {
    name   = "name"
    values = ["amzn2-ami-hvm-*-x86_64-gp2"]
  }
}

resource "aws_instance" "web" {
  ami                    = data.aws_ami.amazon_linux.id
  instance_type          = "t2.micro"
  key_name               = aws_key_pair.deployer.key_name
  vpc_security_group_ids = [aws_security_group.ssh.id]
}</div>
        </div>
    </template>

    <template id="tpl-sg">
        <div class="modal-title">🔒 Security Groups</div>
        <div class="modal-section">
            <h4>What is a Security Group?</h4>
            <p>A Security Group acts as a virtual firewall for your EC2 instances. It controls inbound and outbound traffic at the instance level.</p>
        </div>
        <div class="modal-section">
            <h4>Key Rules</h4>
            <ul>
                <li><strong>Default DENY</strong> - All inbound traffic blocked by default</li>
                <li><strong>Stateful</strong> - Return traffic automatically allowed</li>
                <li><strong>Port 22</strong> - SSH access</li>
                <li><strong>0.0.0.0/0</strong> - Open to all IPs (use with caution!)</li>
            </ul>
        </div>
        <div class="modal-section">
            <h4>Terraform Example</h4>
            <div class="modal-terraform">resource "aws_security_group" "ssh" {
  name        = "allow-ssh"
  description = "Allow SSH inbound"

  ingress {
    from_port   = 22
    to_port     = 22
    protocol    = "tcp"
    cidr_blocks = ["YOUR_IP/32"]  # Restrict to your IP!
  }

  egress {
    from_port   = 0
    to_port     = 0
    protocol    = "-1"
    cidr_blocks = ["0.0.0.0/0"]
  }
}</div>
        </div>
        <div class="modal-example">
            <strong>Security Best Practice:</strong> Never open port 22 to 0.0.0.0/0 in production. Always restrict SSH access to specific IP addresses.
        </div>
    </template>

    <script>
        function showModal(type) {
            var tpl = document.getElementById('tpl-' + type);
            if (!tpl) return;
            document.getElementById('modal-body').innerHTML = tpl.innerHTML;
            document.getElementById('modal').classList.add('active');
        }

        function closeModal() {
            document.getElementById('modal').classList.remove('active');
        }

        document.addEventListener('keydown', function (e) {
            if (e.key === 'Escape') closeModal();
        });
    </script>
</body>
</html>
`
